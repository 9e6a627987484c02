// Package theme defines color themes for the capitalflow terminal.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = TerminalGreen

// TerminalGreen is the default theme - phosphor green on near-black, with
// amber and emerald highlights.
var TerminalGreen = Theme{
	Name:          "terminal-green",
	Background:    lipgloss.Color("#050A06"),
	Surface:       lipgloss.Color("#0B140D"),
	SurfaceHover:  lipgloss.Color("#12211A"),
	SurfaceBright: lipgloss.Color("#1A2E22"),
	Border:        lipgloss.Color("#1F4D2E"),
	BorderBright:  lipgloss.Color("#2F7A45"),
	BorderAccent:  lipgloss.Color("#39FF88"),
	TextDim:       lipgloss.Color("#3F6B4C"),
	TextMuted:     lipgloss.Color("#7FB08E"),
	TextPrimary:   lipgloss.Color("#C8FFD8"),
	Accent:        lipgloss.Color("#39FF88"),
	AccentBright:  lipgloss.Color("#8CFFB8"),
	AccentDim:     lipgloss.Color("#0F2A19"),
	Green:         lipgloss.Color("#34D399"),
	GreenBright:   lipgloss.Color("#6EE7B7"),
	Orange:        lipgloss.Color("#F59E0B"),
	Red:           lipgloss.Color("#F87171"),
	Blue:          lipgloss.Color("#38BDF8"),
	BlueBright:    lipgloss.Color("#7DD3FC"),
	Yellow:        lipgloss.Color("#FBBF24"),
	Magenta:       lipgloss.Color("#E879F9"),
	Cyan:          lipgloss.Color("#2DD4BF"),
}

// AmberCRT mimics a monochrome amber monitor.
var AmberCRT = Theme{
	Name:          "amber-crt",
	Background:    lipgloss.Color("#0D0800"),
	Surface:       lipgloss.Color("#1A1100"),
	SurfaceHover:  lipgloss.Color("#261900"),
	SurfaceBright: lipgloss.Color("#332200"),
	Border:        lipgloss.Color("#5C3D00"),
	BorderBright:  lipgloss.Color("#8A5C00"),
	BorderAccent:  lipgloss.Color("#FFB000"),
	TextDim:       lipgloss.Color("#6B4A00"),
	TextMuted:     lipgloss.Color("#B37B00"),
	TextPrimary:   lipgloss.Color("#FFCC66"),
	Accent:        lipgloss.Color("#FFB000"),
	AccentBright:  lipgloss.Color("#FFD066"),
	AccentDim:     lipgloss.Color("#2E1F00"),
	Green:         lipgloss.Color("#FFB000"),
	GreenBright:   lipgloss.Color("#FFD066"),
	Orange:        lipgloss.Color("#FF8C00"),
	Red:           lipgloss.Color("#FF5F1F"),
	Blue:          lipgloss.Color("#E0A030"),
	BlueBright:    lipgloss.Color("#F0C060"),
	Yellow:        lipgloss.Color("#FFD700"),
	Magenta:       lipgloss.Color("#FF9966"),
	Cyan:          lipgloss.Color("#FFC04D"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{TerminalGreen, AmberCRT, FlexokiDark, Terminal}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to TerminalGreen.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return TerminalGreen
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
