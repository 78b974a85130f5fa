package components

import (
	"tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. note is a transient
// message shown in the middle (colored red when noteErr), right is
// context info such as the ledger source and active filter.
func RenderStatusBar(width int, note string, noteErr bool, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	noteStyle := lipgloss.NewStyle().Foreground(t.Green)
	if noteErr {
		noteStyle = lipgloss.NewStyle().Foreground(t.Red)
	}

	left := " [?]help  [q]uit"
	mid := ""
	if note != "" {
		mid = noteStyle.Render(note)
	}
	if right != "" {
		right += " "
	}

	// Pad left and right of the note to fill the width
	used := lipgloss.Width(left) + lipgloss.Width(mid) + lipgloss.Width(right)
	padding := width - used
	if padding < 2 {
		padding = 2
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	bar := left
	for i := 0; i < leftPad; i++ {
		bar += " "
	}
	bar += mid
	for i := 0; i < rightPad; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
