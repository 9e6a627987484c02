package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestWithHelpers_ReplaceOnlyOneField(t *testing.T) {
	base := Default()

	got := base.WithTargetNiche("x")
	assert.Equal(t, "x", got.TargetNiche)
	got.TargetNiche = base.TargetNiche
	assert.Equal(t, base, got)

	got = base.WithGoal("g")
	got.Goal = base.Goal
	assert.Equal(t, base, got)

	got = base.WithMonetization("m")
	got.Monetization = base.Monetization
	assert.Equal(t, base, got)

	got = base.WithBudget(BudgetAggressive)
	assert.Equal(t, BudgetAggressive, got.Budget)
	got.Budget = base.Budget
	assert.Equal(t, base, got)

	got = base.WithSkillFocus(SkillCommunity)
	got.SkillFocus = base.SkillFocus
	assert.Equal(t, base, got)

	got = base.WithTimePerWeek(33)
	got.TimePerWeek = base.TimePerWeek
	assert.Equal(t, base, got)

	// the receiver is never mutated
	assert.Equal(t, Default(), base)
}

func TestParseBudget(t *testing.T) {
	b, err := ParseBudget(" Lean ")
	require.NoError(t, err)
	assert.Equal(t, BudgetLean, b)

	_, err = ParseBudget("yolo")
	assert.ErrorIs(t, err, ErrUnknownBudget)
}

func TestParseSkillFocus(t *testing.T) {
	for in, want := range map[string]SkillFocus{
		"content-led": SkillContent,
		"Automation":  SkillAutomation,
		"PRODUCT-LED": SkillProduct,
		" community ": SkillCommunity,
	} {
		got, err := ParseSkillFocus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSkillFocus("sales")
	assert.ErrorIs(t, err, ErrUnknownSkillFocus)
}

func TestValidate(t *testing.T) {
	err := Default().WithTimePerWeek(3).Validate()
	assert.ErrorIs(t, err, ErrHoursOutOfRange)

	err = Default().WithTimePerWeek(41).Validate()
	assert.ErrorIs(t, err, ErrHoursOutOfRange)

	err = Default().WithBudget("x").WithSkillFocus("y").Validate()
	assert.ErrorIs(t, err, ErrUnknownBudget)
	assert.ErrorIs(t, err, ErrUnknownSkillFocus)

	assert.NoError(t, Default().WithTimePerWeek(MinHours).Validate())
	assert.NoError(t, Default().WithTimePerWeek(MaxHours).Validate())
}

func TestBudgetDisplay(t *testing.T) {
	assert.Equal(t, "Balanced - $250-$400/mo", BudgetBalanced.Display())
	assert.Equal(t, "Aggressive - $600-$1k/mo", BudgetAggressive.Display())
}
