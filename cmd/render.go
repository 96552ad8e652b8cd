package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Styles for diff and diagnostic output.
var (
	addedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	changedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	keyStyle = lipgloss.NewStyle().
			Bold(true)
)

// renderValueDiff renders an inline character diff between two values,
// insertions green and deletions red.
func renderValueDiff(oldValue, newValue string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldValue, newValue, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(addedStyle.Render(d.Text))
		case diffmatchpatch.DiffDelete:
			sb.WriteString(removedStyle.Render(d.Text))
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// renderKeyList prints keys one per line under a styled marker.
func renderKeyList(marker string, style lipgloss.Style, keys []string) string {
	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("  %s %s\n", style.Render(marker), keyStyle.Render(key)))
	}
	return sb.String()
}
