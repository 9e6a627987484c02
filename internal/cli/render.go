package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/capitalflow/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
	Right   []int // indexes of right-aligned columns
}

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	accent lipgloss.Style
	amber  lipgloss.Style
	dim    lipgloss.Style
}

func newStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		accent: lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true),
		amber:  lipgloss.NewStyle().Foreground(t.Yellow).Bold(true),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
	}
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	t := theme.Active
	width := 64
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderBright).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(newStyles().title.Render(title))
}

// RenderPlan colors a mission payload line by line: rules dim, numbered
// section titles in the accent color, ">>" blocks in amber. The text itself
// is unchanged, so stripping the escapes yields the plain payload.
func RenderPlan(payload string) string {
	s := newStyles()

	lines := strings.Split(strings.TrimSuffix(payload, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			b.WriteString(line)
		case strings.Trim(trimmed, "=-") == "":
			b.WriteString(s.dim.Render(line))
		case strings.HasPrefix(line, "["):
			b.WriteString(s.accent.Render(line))
		case strings.HasPrefix(line, ">>"):
			b.WriteString(s.amber.Render(line))
		case strings.HasPrefix(line, "  ") && !strings.HasPrefix(line, "   "):
			b.WriteString(s.header.Render(line))
		default:
			b.WriteString(s.value.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	s := newStyles()

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	right := make(map[int]bool, len(t.Right))
	for _, i := range t.Right {
		right[i] = true
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(s.header.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, end string) {
		b.WriteString(s.dim.Render(left))
		for i, w := range widths {
			b.WriteString(s.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(s.dim.Render(mid))
			}
		}
		b.WriteString(s.dim.Render(end))
		b.WriteString("\n")
	}

	row := func(cells []string, style lipgloss.Style) {
		b.WriteString(s.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0))
			if right[i] {
				cell = pad + cell
			} else {
				cell += pad
			}
			b.WriteString(style.Render(" " + cell + " "))
			if i < numCols-1 {
				b.WriteString(s.dim.Render("│"))
			}
		}
		b.WriteString(s.dim.Render("│"))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		row(t.Headers, s.header)
		rule("├", "┼", "┤")
	}

	for _, r := range t.Rows {
		if len(r) == 1 && r[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		row(r, s.value)
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderKeyValue renders aligned "key  value" lines under an optional title.
func RenderKeyValue(title string, pairs [][2]string) string {
	s := newStyles()

	keyW := 0
	for _, p := range pairs {
		keyW = max(keyW, lipgloss.Width(p[0]))
	}

	var b strings.Builder
	if title != "" {
		b.WriteString("  ")
		b.WriteString(s.header.Render(title))
		b.WriteString("\n")
	}
	for _, p := range pairs {
		fmt.Fprintf(&b, "    %s  %s\n",
			s.muted.Render(fmt.Sprintf("%-*s", keyW, p[0])),
			s.value.Render(p[1]))
	}
	return b.String()
}
