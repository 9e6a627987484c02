// Package plan holds the mission-plan record and the formatter that turns it
// into a copyable text payload.
package plan

import (
	"errors"
	"fmt"
	"strings"
)

// Hours bounds enforced by the form widget. Generate accepts any value.
const (
	MinHours = 4
	MaxHours = 40
)

var (
	ErrUnknownBudget     = errors.New("unknown budget tier")
	ErrUnknownSkillFocus = errors.New("unknown skill focus")
	ErrHoursOutOfRange   = fmt.Errorf("hours per week must be between %d and %d", MinHours, MaxHours)
)

// Budget is the capital bandwidth tier.
type Budget string

const (
	BudgetLean       Budget = "lean"
	BudgetBalanced   Budget = "balanced"
	BudgetAggressive Budget = "aggressive"
)

// BudgetTier is the display metadata for a Budget.
type BudgetTier struct {
	Label string
	Range string
	// Stack is the allocation line used in the Capital Stack section.
	Stack string
}

var budgetTiers = map[Budget]BudgetTier{
	BudgetLean: {
		Label: "Lean Ops",
		Range: "$75-$150/mo",
		Stack: "free tiers first, one paid tool, reinvest every dollar of revenue",
	},
	BudgetBalanced: {
		Label: "Balanced",
		Range: "$250-$400/mo",
		Stack: "core tooling paid, small ad tests, one freelancer sprint per quarter",
	},
	BudgetAggressive: {
		Label: "Aggressive",
		Range: "$600-$1k/mo",
		Stack: "paid acquisition loops, premium tooling, delegated production",
	},
}

// Budgets returns every budget tier in display order.
func Budgets() []Budget {
	return []Budget{BudgetLean, BudgetBalanced, BudgetAggressive}
}

// Tier returns the display metadata for b. Unknown values render their raw
// name so the formatter never fails.
func (b Budget) Tier() BudgetTier {
	if t, ok := budgetTiers[b]; ok {
		return t
	}
	return BudgetTier{Label: string(b), Range: "unpriced"}
}

// Valid reports whether b is one of the known tiers.
func (b Budget) Valid() bool {
	_, ok := budgetTiers[b]
	return ok
}

// Display is the "Label - Range" form shown in selects and the payload.
func (b Budget) Display() string {
	t := b.Tier()
	return t.Label + " - " + t.Range
}

// ParseBudget accepts a tier name, case-insensitively.
func ParseBudget(s string) (Budget, error) {
	b := Budget(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBudget, s)
	}
	return b, nil
}

// SkillFocus is the strategic emphasis of the plan.
type SkillFocus string

const (
	SkillContent    SkillFocus = "content-led"
	SkillAutomation SkillFocus = "automation-led"
	SkillProduct    SkillFocus = "product-led"
	SkillCommunity  SkillFocus = "community-led"
)

type skillMeta struct {
	label string
	plays [3]string
}

var skillTable = map[SkillFocus]skillMeta{
	SkillContent: {
		label: "Content-Led (SEO, storytelling, thought leadership)",
		plays: [3]string{
			"Publish two cornerstone pieces per week",
			"Repurpose each piece into three short-form posts",
			"Route every post to one owned capture page",
		},
	},
	SkillAutomation: {
		label: "Automation-Led (systems, no-code wiring, API loops)",
		plays: [3]string{
			"Map the manual workflow end to end",
			"Wire triggers and hand-offs with no-code glue",
			"Instrument each loop and prune what never fires",
		},
	},
	SkillProduct: {
		label: "Product-Led (asset creation, UX, packaging)",
		plays: [3]string{
			"Ship a minimum sellable asset",
			"Tighten onboarding until first value lands in minutes",
			"Package tiers around the outcome, not the features",
		},
	},
	SkillCommunity: {
		label: "Community-Led (audience, retention, partnerships)",
		plays: [3]string{
			"Host a recurring session for the core audience",
			"Turn member wins into public case studies",
			"Trade audience access with two adjacent partners",
		},
	},
}

// SkillFoci returns every skill focus in display order.
func SkillFoci() []SkillFocus {
	return []SkillFocus{SkillContent, SkillAutomation, SkillProduct, SkillCommunity}
}

// Label returns the descriptive label for s, or the raw value if unknown.
func (s SkillFocus) Label() string {
	if m, ok := skillTable[s]; ok {
		return m.label
	}
	return string(s)
}

// Plays returns the execution plays for s; nil if s is unknown.
func (s SkillFocus) Plays() []string {
	m, ok := skillTable[s]
	if !ok {
		return nil
	}
	return m.plays[:]
}

// Valid reports whether s is one of the known skill foci.
func (s SkillFocus) Valid() bool {
	_, ok := skillTable[s]
	return ok
}

// ParseSkillFocus accepts "content-led" or the short form "content".
func ParseSkillFocus(v string) (SkillFocus, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	if !strings.HasSuffix(s, "-led") {
		s += "-led"
	}
	sf := SkillFocus(s)
	if !sf.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSkillFocus, v)
	}
	return sf, nil
}

// Input is the form record. It is a value: edits produce a new Input.
type Input struct {
	TargetNiche  string
	Goal         string
	Monetization string
	Budget       Budget
	SkillFocus   SkillFocus
	TimePerWeek  int
}

// Default returns the starting record shown when the form opens.
func Default() Input {
	return Input{
		TargetNiche:  "B2B newsletter for indie SaaS founders",
		Goal:         "Reach $3k MRR in six months without quitting the day job",
		Monetization: "Sponsorships + paid deep-dive tier",
		Budget:       BudgetBalanced,
		SkillFocus:   SkillAutomation,
		TimePerWeek:  12,
	}
}

// The With* helpers return a copy of in with a single field replaced.

func (in Input) WithTargetNiche(v string) Input { in.TargetNiche = v; return in }
func (in Input) WithGoal(v string) Input { in.Goal = v; return in }
func (in Input) WithMonetization(v string) Input { in.Monetization = v; return in }
func (in Input) WithBudget(v Budget) Input { in.Budget = v; return in }
func (in Input) WithSkillFocus(v SkillFocus) Input { in.SkillFocus = v; return in }
func (in Input) WithTimePerWeek(v int) Input { in.TimePerWeek = v; return in }

// Validate checks the closed enums and the widget hour range.
func (in Input) Validate() error {
	var errs []error
	if !in.Budget.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownBudget, in.Budget))
	}
	if !in.SkillFocus.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSkillFocus, in.SkillFocus))
	}
	if err := ValidateHours(in.TimePerWeek); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ValidateHours checks h against [MinHours, MaxHours].
func ValidateHours(h int) error {
	if h < MinHours || h > MaxHours {
		return fmt.Errorf("%w (got %d)", ErrHoursOutOfRange, h)
	}
	return nil
}
