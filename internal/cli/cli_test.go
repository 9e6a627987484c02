package cli

import (
	"regexp"
	"strings"
	"testing"

	"github.com/theirongolddev/capitalflow/internal/plan"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func strip(s string) string { return ansi.ReplaceAllString(s, "") }

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "12h/wk", FormatHours(12))
	assert.Equal(t, "12h/wk (30%)", FormatLoad(12, 40))
	assert.Equal(t, "7h/wk", FormatLoad(7, 0))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "1,234", FormatNumber(1234))
	assert.Equal(t, "-1,234,567", FormatNumber(-1234567))
}

func TestRenderPlan_PreservesText(t *testing.T) {
	payload := plan.Generate(plan.Default())

	styled := RenderPlan(payload)
	assert.NotEqual(t, payload, styled)
	assert.Equal(t, payload, strip(styled))
}

func TestRenderTable(t *testing.T) {
	out := strip(RenderTable(Table{
		Title:   "Budget tiers",
		Headers: []string{"Key", "Range"},
		Rows: [][]string{
			{"lean", "$75-$150/mo"},
			{"---"},
			{"aggressive", "$600-$1k/mo"},
		},
		Right: []int{1},
	}))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, "  Budget tiers", lines[0])
	assert.Equal(t, "│ Key        │       Range │", lines[2])
	assert.Equal(t, "│ lean       │ $75-$150/mo │", lines[4])
	assert.Equal(t, "├────────────┼─────────────┤", lines[5])

	width := lipgloss.Width(lines[1])
	for _, l := range lines[1:] {
		assert.Equal(t, width, lipgloss.Width(l))
	}

	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderKeyValue(t *testing.T) {
	out := strip(RenderKeyValue("Clipboard", [][2]string{{"mode", "auto"}, {"show_errors", "true"}}))
	assert.Equal(t, "  Clipboard\n    mode         auto\n    show_errors  true\n", out)
}
