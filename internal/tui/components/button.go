package components

import (
	"github.com/theirongolddev/capitalflow/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Labels for the copy button.
const (
	CopyLabel   = "Copy Mission Payload"
	CopiedLabel = "Copied Mission Payload"
)

// CopyButton renders the copy action, switching label and color while the
// copied acknowledgement is showing.
func CopyButton(copied bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true)

	if copied {
		return style.
			Foreground(t.Background).
			Background(t.GreenBright).
			Render("✓ " + CopiedLabel)
	}
	return style.
		Foreground(t.Background).
		Background(t.Accent).
		Render(CopyLabel)
}
