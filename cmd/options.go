package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/capitalflow/internal/cli"
	"github.com/theirongolddev/capitalflow/internal/plan"

	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List budget tiers and skill foci",
	RunE:  runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, _ []string) error {
	setup().log.Close()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, cli.RenderTitle("CAPITALFLOW // MISSION OPTIONS"))
	fmt.Fprintln(out)

	budgets := cli.Table{
		Title:   "Capital bandwidth (--budget)",
		Headers: []string{"Key", "Tier", "Range", "Capital stack"},
		Right:   []int{2},
	}
	for _, b := range plan.Budgets() {
		tier := b.Tier()
		budgets.Rows = append(budgets.Rows, []string{string(b), tier.Label, tier.Range, tier.Stack})
	}
	fmt.Fprint(out, cli.RenderTable(budgets))
	fmt.Fprintln(out)

	skills := cli.Table{
		Title:   "Skill dominance (--skill)",
		Headers: []string{"Key", "Focus"},
	}
	for i, s := range plan.SkillFoci() {
		if i > 0 {
			skills.Rows = append(skills.Rows, []string{"---"})
		}
		skills.Rows = append(skills.Rows, []string{string(s), s.Label()})
		for _, p := range s.Plays() {
			skills.Rows = append(skills.Rows, []string{"", "- " + p})
		}
	}
	fmt.Fprint(out, cli.RenderTable(skills))
	fmt.Fprintln(out)

	fmt.Fprint(out, cli.RenderKeyValue("Ops tempo (--hours)", [][2]string{
		{"range", fmt.Sprintf("%s to %s", cli.FormatHours(plan.MinHours), cli.FormatHours(plan.MaxHours))},
		{"default", cli.FormatLoad(plan.Default().TimePerWeek, plan.MaxHours)},
	}))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Skill keys accept the short form too: "+strings.Join(shortSkills(), ", "))
	return nil
}

func shortSkills() []string {
	var out []string
	for _, s := range plan.SkillFoci() {
		out = append(out, strings.TrimSuffix(string(s), "-led"))
	}
	return out
}
