package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/capitalflow/internal/cli"
	"github.com/theirongolddev/capitalflow/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	d := cfg.Defaults
	fmt.Fprintln(out, cli.RenderKeyValue("[defaults]", [][2]string{
		{"target_niche", d.TargetNiche},
		{"goal", orNone(d.Goal)},
		{"monetization", d.Monetization},
		{"budget", d.Budget},
		{"skill_focus", d.SkillFocus},
		{"time_per_week", cli.FormatHours(d.TimePerWeek)},
	}))

	fmt.Fprintln(out, cli.RenderKeyValue("[appearance]", [][2]string{
		{"theme", cfg.Appearance.Theme},
	}))

	mode := config.GetClipboardMode(cfg)
	if mode != cfg.Clipboard.Mode {
		mode += " (from CAPITALFLOW_CLIPBOARD)"
	}
	fmt.Fprintln(out, cli.RenderKeyValue("[clipboard]", [][2]string{
		{"mode", mode},
		{"show_errors", strconv.FormatBool(cfg.Clipboard.ShowErrors)},
	}))

	level := config.GetLogLevel(cfg)
	if level != cfg.Logging.Level {
		level += " (from CAPITALFLOW_LOG_LEVEL)"
	}
	fmt.Fprintln(out, cli.RenderKeyValue("[logging]", [][2]string{
		{"level", level},
		{"file", config.LogPath(cfg)},
	}))

	fmt.Fprintln(out, "  Run `capitalflow setup` to reconfigure.")
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
