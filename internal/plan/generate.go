package plan

import (
	"fmt"
	"strings"
)

const payloadWidth = 64

// Generate renders in as the mission payload. It is pure: the same Input
// always yields the same bytes, and it never fails.
//
// Free-text fields are echoed verbatim. TimePerWeek appears exactly once, as
// "<n>h/wk", and nothing else in the layout depends on it.
func Generate(in Input) string {
	rule := strings.Repeat("=", payloadWidth)
	thin := strings.Repeat("-", payloadWidth)
	tier := in.Budget.Tier()

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("  CAPITALFLOW ERP // PASSIVE INCOME OS\n")
	b.WriteString("  MISSION PAYLOAD\n")
	b.WriteString(rule + "\n\n")

	section(&b, 1, "TARGET NICHE", in.TargetNiche)
	section(&b, 2, "PRIMARY OBJECTIVE", in.Goal)
	section(&b, 3, "MONETIZATION TRACK", in.Monetization)
	section(&b, 4, "CAPITAL BANDWIDTH", tier.Label+" - "+tier.Range)
	section(&b, 5, "SKILL DOMINANCE", in.SkillFocus.Label())
	section(&b, 6, "OPS TEMPO", fmt.Sprintf("%dh/wk", in.TimePerWeek)+" of protected focus time")

	b.WriteString(thin + "\n")
	b.WriteString(">> EXECUTION LOOP\n")
	plays := in.SkillFocus.Plays()
	if len(plays) == 0 {
		b.WriteString("   (no playbook for this focus)\n")
	}
	for i, p := range plays {
		fmt.Fprintf(&b, "   %d. %s\n", i+1, p)
	}
	b.WriteString("\n")

	b.WriteString(">> CAPITAL STACK\n")
	if tier.Stack != "" {
		b.WriteString("   " + tier.Stack + "\n")
	} else {
		b.WriteString("   (no allocation for this tier)\n")
	}
	b.WriteString("\n")

	b.WriteString(">> CHECKPOINTS\n")
	b.WriteString("   [ ] Week 1: validate the niche with ten direct conversations\n")
	b.WriteString("   [ ] Week 4: first paid signal on the monetization track\n")
	b.WriteString("   [ ] Week 12: review capital burn against the tier range\n")
	b.WriteString(rule + "\n")
	b.WriteString("  END OF PAYLOAD\n")
	b.WriteString(rule + "\n")

	return b.String()
}

func section(b *strings.Builder, n int, title, body string) {
	fmt.Fprintf(b, "[%02d] %s\n", n, title)
	b.WriteString("     " + body + "\n\n")
}
