package components

import (
	"strings"

	"github.com/theirongolddev/capitalflow/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and,
// when set, a notice on the right.
func RenderStatusBar(width int, bindings []key.Binding, notice string) string {
	t := theme.Active

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.TextMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.TextDim)

	left := " " + h.ShortHelpView(bindings)
	right := ""
	if notice != "" {
		right = lipgloss.NewStyle().
			Foreground(t.Red).
			Bold(true).
			Render(notice) + " "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Notice wins over hints when space is short.
		if right != "" {
			return lipgloss.NewStyle().Width(width).Render(" " + right)
		}
		padding = 0
	}

	return lipgloss.NewStyle().
		Width(width).
		Render(left + strings.Repeat(" ", padding) + right)
}
