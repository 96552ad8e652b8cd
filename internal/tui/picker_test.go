package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTruncateValue(t *testing.T) {
	tests := []struct {
		value  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a value that is definitely too long", 20, "a value that is d..."},
		{"line1\nline2", 20, "line1\\nline2"},
		{"", 10, ""},
		{strings.Repeat("é", 25), 20, strings.Repeat("é", 17) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := truncateValue(tt.value, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncateValue(%q, %d) = %q, want %q", tt.value, tt.maxLen, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateValue(%q, %d) produced invalid UTF-8", tt.value, tt.maxLen)
			}
		})
	}
}

func TestValueItemMethods(t *testing.T) {
	item := valueItem{label: "source", value: "postgres://localhost", choice: ChoiceSource}

	t.Run("Title", func(t *testing.T) {
		if got := item.Title(); got != "source" {
			t.Errorf("Title() = %q, want %q", got, "source")
		}
	})

	t.Run("Description", func(t *testing.T) {
		if got := item.Description(); got != "postgres://localhost" {
			t.Errorf("Description() = %q, want value", got)
		}
	})

	t.Run("Description empty value", func(t *testing.T) {
		empty := valueItem{label: "target", value: ""}
		if got := empty.Description(); got != "(empty)" {
			t.Errorf("Description() = %q, want %q", got, "(empty)")
		}
	})

	t.Run("FilterValue", func(t *testing.T) {
		if got := item.FilterValue(); got != "source" {
			t.Errorf("FilterValue() = %q, want %q", got, "source")
		}
	})
}

func testConflicts() []Conflict {
	return []Conflict{
		{Key: "DATABASE_URL", SourceValue: "postgres://prod", TargetValue: "postgres://local"},
		{Key: "PORT", SourceValue: "3000", TargetValue: "8080"},
	}
}

func TestModelKeyHandling(t *testing.T) {
	t.Run("s picks source and advances", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
		model := newModel.(Model)

		if len(model.resolutions) != 1 {
			t.Fatalf("resolutions = %d, want 1", len(model.resolutions))
		}
		r := model.resolutions[0]
		if r.Key != "DATABASE_URL" || r.Choice != ChoiceSource || r.Value != "postgres://prod" {
			t.Errorf("resolution = %+v, want source value for DATABASE_URL", r)
		}
		if model.index != 1 {
			t.Errorf("index = %d, want 1", model.index)
		}
		if model.quitting {
			t.Error("should not quit with conflicts remaining")
		}
		if cmd != nil {
			t.Error("advancing should not return a command")
		}
	})

	t.Run("t picks target", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
		model := newModel.(Model)

		r := model.resolutions[0]
		if r.Choice != ChoiceTarget || r.Value != "postgres://local" {
			t.Errorf("resolution = %+v, want target value", r)
		}
	})

	t.Run("last conflict quits", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
		newModel, cmd := newModel.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
		model := newModel.(Model)

		if !model.quitting {
			t.Error("should quit after the last conflict")
		}
		if cmd == nil {
			t.Error("should return tea.Quit command")
		}
		if len(model.Resolutions()) != 2 {
			t.Errorf("resolutions = %d, want 2", len(model.Resolutions()))
		}
	})

	t.Run("a picks source for all remaining", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
		model := newModel.(Model)

		if !model.quitting {
			t.Error("should quit after resolving all")
		}
		if model.Aborted() {
			t.Error("all-source is not an abort")
		}
		if len(model.resolutions) != 2 {
			t.Fatalf("resolutions = %d, want 2", len(model.resolutions))
		}
		for _, r := range model.resolutions {
			if r.Choice != ChoiceSource {
				t.Errorf("resolution %q choice = %v, want ChoiceSource", r.Key, r.Choice)
			}
		}
	})

	t.Run("quit with q aborts", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		model := newModel.(Model)

		if !model.Aborted() {
			t.Error("q should abort")
		}
		if !model.quitting {
			t.Error("Model should be quitting")
		}
		if cmd == nil {
			t.Error("Should return tea.Quit command")
		}
	})

	t.Run("quit with esc aborts", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if !newModel.(Model).Aborted() {
			t.Error("esc should abort")
		}
	})

	t.Run("window size update", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		newModel, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
		model := newModel.(Model)

		if model.width != 100 {
			t.Errorf("Width = %d, want 100", model.width)
		}
		if model.height != 50 {
			t.Errorf("Height = %d, want 50", model.height)
		}
		if cmd != nil {
			t.Error("Window size update should not return a command")
		}
	})
}

func TestModelInit(t *testing.T) {
	m := Model{}
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should return nil")
	}
}

func TestModelView(t *testing.T) {
	t.Run("normal view contains help and progress", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		view := m.View()

		if !strings.Contains(view, "[s] Source") {
			t.Error("View should contain source help")
		}
		if !strings.Contains(view, "[q] Abort") {
			t.Error("View should contain abort help")
		}
		if !strings.Contains(view, "conflict 1 of 2") {
			t.Error("View should contain progress line")
		}
		if !strings.Contains(view, "DATABASE_URL") {
			t.Error("View should contain the conflicting key")
		}
	})

	t.Run("quitting view is empty", func(t *testing.T) {
		m := NewConflictPicker(testConflicts())
		m.quitting = true
		if view := m.View(); view != "" {
			t.Errorf("Quitting view should be empty, got %q", view)
		}
	})
}

func TestRunConflictPickerEmpty(t *testing.T) {
	resolved, ok, err := RunConflictPicker(nil)
	if err != nil {
		t.Fatalf("RunConflictPicker with no conflicts failed: %v", err)
	}
	if !ok {
		t.Error("empty picker should report ok")
	}
	if len(resolved) != 0 {
		t.Errorf("resolved = %v, want empty", resolved)
	}
}

func TestSimpleConflicts(t *testing.T) {
	t.Run("no conflicts", func(t *testing.T) {
		output := SimpleConflicts(nil)
		if !strings.Contains(output, "No conflicts found") {
			t.Error("Should indicate no conflicts")
		}
	})

	t.Run("with conflicts", func(t *testing.T) {
		output := SimpleConflicts(testConflicts())

		if !strings.Contains(output, "DATABASE_URL") {
			t.Error("Should contain first key")
		}
		if !strings.Contains(output, "PORT") {
			t.Error("Should contain second key")
		}
		if !strings.Contains(output, "source: postgres://prod") {
			t.Error("Should show the source value")
		}
		if !strings.Contains(output, "target: 8080") {
			t.Error("Should show the target value")
		}
	})
}

func TestChoiceConstants(t *testing.T) {
	choices := []Choice{ChoiceNone, ChoiceSource, ChoiceTarget, ChoiceQuit}
	seen := make(map[Choice]bool)

	for _, c := range choices {
		if seen[c] {
			t.Errorf("Duplicate choice value: %v", c)
		}
		seen[c] = true
	}
}
