package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/capitalflow/internal/clipboard"
	"github.com/theirongolddev/capitalflow/internal/plan"
	"github.com/theirongolddev/capitalflow/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formValues is the storage huh writes through. It lives on the heap so the
// App value can be copied freely while the form keeps pointing at it.
type formValues struct {
	targetNiche  string
	goal         string
	monetization string
	budget       plan.Budget
	skillFocus   plan.SkillFocus
	hours        string
}

func newFormValues(in plan.Input) *formValues {
	return &formValues{
		targetNiche:  in.TargetNiche,
		goal:         in.Goal,
		monetization: in.Monetization,
		budget:       in.Budget,
		skillFocus:   in.SkillFocus,
		hours:        strconv.Itoa(in.TimePerWeek),
	}
}

// apply returns in with every field that differs from the bound values
// replaced. An hours value that does not parse or is out of range leaves
// TimePerWeek untouched, so half-typed numbers never reach the payload.
func (v *formValues) apply(in plan.Input) plan.Input {
	if v.targetNiche != in.TargetNiche {
		in = in.WithTargetNiche(v.targetNiche)
	}
	if v.goal != in.Goal {
		in = in.WithGoal(v.goal)
	}
	if v.monetization != in.Monetization {
		in = in.WithMonetization(v.monetization)
	}
	if v.budget != in.Budget {
		in = in.WithBudget(v.budget)
	}
	if v.skillFocus != in.SkillFocus {
		in = in.WithSkillFocus(v.skillFocus)
	}
	if h, err := parseHours(v.hours); err == nil && h != in.TimePerWeek {
		in = in.WithTimePerWeek(h)
	}
	return in
}

func parseHours(s string) (int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("enter a whole number of hours")
	}
	if err := plan.ValidateHours(h); err != nil {
		return 0, fmt.Errorf("between %d and %d hours", plan.MinHours, plan.MaxHours)
	}
	return h, nil
}

func validateHours(s string) error {
	_, err := parseHours(s)
	return err
}

// missionFields returns the six mission parameter fields bound to v.
func missionFields(v *formValues) []huh.Field {
	budgetOpts := make([]huh.Option[plan.Budget], 0, len(plan.Budgets()))
	for _, b := range plan.Budgets() {
		budgetOpts = append(budgetOpts, huh.NewOption(b.Display(), b))
	}

	skillOpts := make([]huh.Option[plan.SkillFocus], 0, len(plan.SkillFoci()))
	for _, s := range plan.SkillFoci() {
		skillOpts = append(skillOpts, huh.NewOption(s.Label(), s))
	}

	return []huh.Field{
		huh.NewInput().
			Key("targetNiche").
			Title("Target niche").
			Value(&v.targetNiche),
		huh.NewText().
			Key("goal").
			Title("Primary objective").
			Lines(3).
			Value(&v.goal),
		huh.NewInput().
			Key("monetization").
			Title("Monetization track").
			Value(&v.monetization),
		huh.NewSelect[plan.Budget]().
			Key("budget").
			Title("Capital bandwidth").
			Options(budgetOpts...).
			Value(&v.budget),
		huh.NewSelect[plan.SkillFocus]().
			Key("skillFocus").
			Title("Skill dominance").
			Options(skillOpts...).
			Value(&v.skillFocus),
		huh.NewInput().
			Key("timePerWeek").
			Title("Focus hours / week").
			Description(fmt.Sprintf("%d-%d", plan.MinHours, plan.MaxHours)).
			CharLimit(2).
			Validate(validateHours).
			Value(&v.hours),
	}
}

// newPlanForm builds the embedded mission form bound to v.
func newPlanForm(v *formValues) *huh.Form {
	return huh.NewForm(huh.NewGroup(missionFields(v)...)).
		WithTheme(formTheme()).
		WithShowHelp(false)
}

// Setup is the standalone wizard behind `capitalflow setup`: the mission
// fields as saved defaults, then theme and clipboard backend.
type Setup struct {
	Theme         string
	ClipboardMode string

	base   plan.Input
	values *formValues
	form   *huh.Form
}

// NewSetup builds the wizard pre-filled with the current settings.
func NewSetup(in plan.Input, themeName, clipboardMode string) *Setup {
	s := &Setup{
		Theme:         themeName,
		ClipboardMode: clipboardMode,
		base:          in,
		values:        newFormValues(in),
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	s.form = huh.NewForm(
		huh.NewGroup(missionFields(s.values)...).
			Title("Mission defaults").
			Description("Values the form opens with."),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("theme").
				Title("Color theme").
				Options(themeOpts...).
				Value(&s.Theme),
			huh.NewSelect[string]().
				Key("clipboard").
				Title("Clipboard").
				Options(
					huh.NewOption("auto - system, then terminal (OSC 52)", clipboard.ModeAuto),
					huh.NewOption("system - OS clipboard only", clipboard.ModeSystem),
					huh.NewOption("osc52 - terminal escape, works over SSH", clipboard.ModeOSC52),
				).
				Value(&s.ClipboardMode),
		).Title("Terminal"),
	).WithTheme(formTheme())

	return s
}

// Form returns the wizard form, ready for Run.
func (s *Setup) Form() *huh.Form { return s.form }

// Input returns the mission defaults as entered.
func (s *Setup) Input() plan.Input { return s.values.apply(s.base) }

// formTheme maps the active palette onto huh's field styles.
func formTheme() *huh.Theme {
	t := theme.Active
	th := huh.ThemeBase()

	th.Focused.Base = th.Focused.Base.BorderForeground(t.BorderAccent)
	th.Focused.Title = lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)
	th.Focused.Description = lipgloss.NewStyle().Foreground(t.TextDim)
	th.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(t.Red).SetString(" *")
	th.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(t.Red)
	th.Focused.SelectSelector = lipgloss.NewStyle().Foreground(t.Accent).SetString("> ")
	th.Focused.Option = lipgloss.NewStyle().Foreground(t.TextPrimary)
	th.Focused.SelectedOption = lipgloss.NewStyle().Foreground(t.AccentBright)
	th.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(t.AccentBright)
	th.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(t.Accent)
	th.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(t.TextPrimary)
	th.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(t.TextDim)

	th.Blurred = th.Focused
	th.Blurred.Base = th.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	th.Blurred.Title = lipgloss.NewStyle().Foreground(t.TextMuted)
	th.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(t.TextMuted)
	th.Blurred.Option = lipgloss.NewStyle().Foreground(t.TextMuted)
	th.Blurred.SelectSelector = lipgloss.NewStyle().SetString("  ")

	return th
}
