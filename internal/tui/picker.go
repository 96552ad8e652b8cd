// Package tui provides terminal user interface components for envctl
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Conflict is a key present in both files with differing values.
type Conflict struct {
	Key         string
	SourceValue string
	TargetValue string
}

// Choice represents which side of a conflict the user picked
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceSource
	ChoiceTarget
	ChoiceQuit
)

// Resolution records the picked value for one conflicting key.
type Resolution struct {
	Key    string
	Choice Choice
	Value  string
}

// valueItem implements list.Item for one side of a conflict
type valueItem struct {
	label  string
	value  string
	choice Choice
}

func (i valueItem) Title() string {
	return i.label
}

func (i valueItem) Description() string {
	if i.value == "" {
		return "(empty)"
	}
	return truncateValue(i.value, 60)
}

func (i valueItem) FilterValue() string {
	return i.label
}

// truncateValue shortens a value for one-line display. Truncation counts
// runes so a multi-byte character is never split.
func truncateValue(value string, maxLen int) string {
	value = strings.ReplaceAll(value, "\n", "\\n")
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	return string(runes[:maxLen-3]) + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Model is the bubbletea model for the conflict picker. It walks the
// conflicts one at a time; each list holds the two candidate values.
type Model struct {
	list        list.Model
	conflicts   []Conflict
	index       int
	resolutions []Resolution
	aborted     bool
	quitting    bool
	width       int
	height      int
}

// NewConflictPicker creates a picker over the given conflicts.
func NewConflictPicker(conflicts []Conflict) Model {
	m := Model{conflicts: conflicts}
	m.list = newValueList()
	m.loadConflict(0)
	return m
}

func newValueList() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(nil, delegate, 80, 14)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = titleStyle
	return l
}

func (m *Model) loadConflict(i int) {
	if i >= len(m.conflicts) {
		return
	}
	c := m.conflicts[i]
	m.index = i
	m.list.Title = fmt.Sprintf("Conflict: %s", c.Key)
	m.list.SetItems([]list.Item{
		valueItem{label: "source", value: c.SourceValue, choice: ChoiceSource},
		valueItem{label: "target", value: c.TargetValue, choice: ChoiceTarget},
	})
	m.list.Select(0)
}

func (m *Model) record(choice Choice) {
	c := m.conflicts[m.index]
	value := c.SourceValue
	if choice == ChoiceTarget {
		value = c.TargetValue
	}
	m.resolutions = append(m.resolutions, Resolution{Key: c.Key, Choice: choice, Value: value})
}

// advance moves to the next conflict, quitting when all are resolved.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.index+1 >= len(m.conflicts) {
		m.quitting = true
		return m, tea.Quit
	}
	m.loadConflict(m.index + 1)
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(valueItem); ok {
				m.record(item.choice)
				return m.advance()
			}

		case "s":
			m.record(ChoiceSource)
			return m.advance()

		case "t":
			m.record(ChoiceTarget)
			return m.advance()

		case "a":
			// Take the source value for this and every remaining conflict.
			for m.index < len(m.conflicts) {
				m.record(ChoiceSource)
				m.index++
			}
			m.quitting = true
			return m, tea.Quit

		case "q", "esc", "ctrl+c":
			m.aborted = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	progress := progressStyle.Render(fmt.Sprintf("conflict %d of %d", m.index+1, len(m.conflicts)))
	help := helpStyle.Render("[enter] Pick  [s] Source  [t] Target  [a] All source  [q] Abort")

	return m.list.View() + "\n" + progress + "\n" + help
}

// Resolutions returns the choices made so far.
func (m Model) Resolutions() []Resolution {
	return m.resolutions
}

// Aborted reports whether the user quit before resolving every conflict.
func (m Model) Aborted() bool {
	return m.aborted
}

// RunConflictPicker walks the user through each conflict interactively and
// returns the chosen value per key. ok is false when the user aborted.
func RunConflictPicker(conflicts []Conflict) (resolved map[string]string, ok bool, err error) {
	if len(conflicts) == 0 {
		return map[string]string{}, true, nil
	}

	m := NewConflictPicker(conflicts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	final := finalModel.(Model)
	if final.Aborted() {
		return nil, false, nil
	}

	resolved = make(map[string]string, len(final.Resolutions()))
	for _, r := range final.Resolutions() {
		resolved[r.Key] = r.Value
	}
	return resolved, true, nil
}

// SimpleConflicts is a non-interactive rendering of the conflicts, for
// terminals that cannot host the picker.
func SimpleConflicts(conflicts []Conflict) string {
	var sb strings.Builder

	sb.WriteString("Conflicting keys\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(conflicts) == 0 {
		sb.WriteString("No conflicts found.\n")
		return sb.String()
	}

	for i, c := range conflicts {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.Key))
		sb.WriteString(fmt.Sprintf("   source: %s\n", truncateValue(c.SourceValue, 50)))
		sb.WriteString(fmt.Sprintf("   target: %s\n\n", truncateValue(c.TargetValue, 50)))
	}

	return sb.String()
}
