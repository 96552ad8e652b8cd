// Package tui provides terminal user interface components for envctl.
//
// This package uses the Bubble Tea framework to create interactive terminal
// interfaces, primarily the sync command's conflict picker.
//
// # Conflict Picker
//
// The picker walks through keys whose values differ between the source and
// target files, one conflict at a time:
//
//	conflicts := []tui.Conflict{{Key: "PORT", SourceValue: "3000", TargetValue: "8080"}}
//	resolved, ok, err := tui.RunConflictPicker(conflicts)
//	if !ok {
//	    // User aborted; leave the target untouched.
//	}
//	// resolved["PORT"] holds the picked value.
//
// # Picker Features
//
//   - One conflict at a time, with a progress line
//   - Keyboard navigation (j/k or arrows)
//   - Quick actions: Enter (pick highlighted), s (source), t (target),
//     a (source for all remaining), q (abort)
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
