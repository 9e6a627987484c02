package components

import (
	"fmt"

	"github.com/theirongolddev/capitalflow/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForLoad returns green/accent/orange based on how much of the week
// is committed.
func ColorForLoad(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.75:
		return string(t.Orange)
	case pct >= 0.4:
		return string(t.Accent)
	default:
		return string(t.Green)
	}
}

// TempoGauge renders hours as a bar against maxHours, followed by the
// percentage. Values outside [0, max] are clamped for drawing only.
func TempoGauge(hours, maxHours, width int) string {
	t := theme.Active

	pct := 0.0
	if maxHours > 0 {
		pct = float64(hours) / float64(maxHours)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	barW := width - 5
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForLoad(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForLoad(pct))).
		Background(t.Surface).
		Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
