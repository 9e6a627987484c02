package plan

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_EchoesFreeTextVerbatim(t *testing.T) {
	cases := []Input{
		Default(),
		Default().WithTargetNiche("").WithGoal("").WithMonetization(""),
		Default().WithGoal("line one\n  line two with  spaces\n\nline four"),
		Default().WithTargetNiche("ünïcode — niche ✓").WithMonetization("50% rev-share {x}"),
	}

	for i, in := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			out := Generate(in)
			require.NotEmpty(t, out)
			assert.Contains(t, out, in.TargetNiche)
			assert.Contains(t, out, in.Goal)
			assert.Contains(t, out, in.Monetization)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	in := Default().WithGoal("ship it\ntwice")
	assert.Equal(t, Generate(in), Generate(in))
}

func TestGenerate_BudgetTiers(t *testing.T) {
	want := map[Budget][2]string{
		BudgetLean:       {"Lean Ops", "$75-$150/mo"},
		BudgetBalanced:   {"Balanced", "$250-$400/mo"},
		BudgetAggressive: {"Aggressive", "$600-$1k/mo"},
	}
	for _, b := range Budgets() {
		out := Generate(Default().WithBudget(b))
		assert.Contains(t, out, want[b][0], "budget %s label", b)
		assert.Contains(t, out, want[b][1], "budget %s range", b)
		assert.Contains(t, out, want[b][0]+" - "+want[b][1], "budget %s display", b)
	}
}

func TestGenerate_SkillFocusLabels(t *testing.T) {
	want := map[SkillFocus]string{
		SkillContent:    "Content-Led (SEO, storytelling, thought leadership)",
		SkillAutomation: "Automation-Led (systems, no-code wiring, API loops)",
		SkillProduct:    "Product-Led (asset creation, UX, packaging)",
		SkillCommunity:  "Community-Led (audience, retention, partnerships)",
	}
	for _, s := range SkillFoci() {
		out := Generate(Default().WithSkillFocus(s))
		assert.Contains(t, out, want[s])
		for _, p := range s.Plays() {
			assert.Contains(t, out, p)
		}
	}
}

func TestGenerate_HoursChangeOnlyTheirToken(t *testing.T) {
	base := Default()
	for _, h := range []int{4, 9, 10, 40, 0, 123} {
		a := Generate(base.WithTimePerWeek(10))
		b := Generate(base.WithTimePerWeek(h))

		tokA := "10h/wk"
		tokB := fmt.Sprintf("%dh/wk", h)
		require.Equal(t, 1, strings.Count(a, tokA))
		require.Equal(t, 1, strings.Count(b, tokB))

		assert.Equal(t,
			strings.Replace(a, tokA, "<hours>", 1),
			strings.Replace(b, tokB, "<hours>", 1),
			"hours=%d changed more than the hours token", h)
	}
}

func TestGenerate_EndToEndScenario(t *testing.T) {
	in := Input{
		TargetNiche:  "newsletter ops",
		Goal:         "reach $2k MRR",
		Monetization: "sponsorships",
		Budget:       BudgetLean,
		SkillFocus:   SkillContent,
		TimePerWeek:  10,
	}
	out := Generate(in)

	assert.Contains(t, out, "[04] CAPITAL BANDWIDTH\n     Lean Ops - $75-$150/mo\n")
	assert.Contains(t, out, "[05] SKILL DOMINANCE\n     Content-Led (SEO, storytelling, thought leadership)\n")
	assert.Contains(t, out, "newsletter ops")
	assert.Contains(t, out, "reach $2k MRR")
	assert.Contains(t, out, "sponsorships")
	assert.Contains(t, out, "10h/wk")
}

func TestGenerate_UnknownEnumsDoNotFail(t *testing.T) {
	in := Default().WithBudget("moonshot").WithSkillFocus("vibes-led")
	out := Generate(in)
	assert.Contains(t, out, "moonshot - unpriced")
	assert.Contains(t, out, "vibes-led")
	assert.Contains(t, out, "(no playbook for this focus)")
	assert.Contains(t, out, "(no allocation for this tier)")
}
