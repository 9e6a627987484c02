// Package cmd implements the capitalflow CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/capitalflow/internal/clipboard"
	"github.com/theirongolddev/capitalflow/internal/config"
	"github.com/theirongolddev/capitalflow/internal/logging"
	"github.com/theirongolddev/capitalflow/internal/plan"
	"github.com/theirongolddev/capitalflow/internal/tui/theme"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newClipboard builds the clipboard writer for a mode.
var newClipboard = clipboard.New

var (
	flagNiche        string
	flagGoal         string
	flagMonetization string
	flagBudget       string
	flagSkill        string
	flagHours        int
	flagTheme        string
)

var rootCmd = &cobra.Command{
	Use:   "capitalflow",
	Short: "Passive income mission planner",
	Long: "Feed the mission parameters and CapitalFlow formats them into a " +
		"copy-ready mission payload.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	addInputFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (overrides config)")
}

// addInputFlags registers the flags that seed the mission record.
func addInputFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagNiche, "niche", "", "Target niche")
	fs.StringVar(&flagGoal, "goal", "", "Primary objective")
	fs.StringVar(&flagMonetization, "monetization", "", "Monetization track")
	fs.StringVarP(&flagBudget, "budget", "b", "", "Budget tier (lean, balanced, aggressive)")
	fs.StringVarP(&flagSkill, "skill", "s", "", "Skill focus (content, automation, product, community)")
	fs.IntVarP(&flagHours, "hours", "H", 0, fmt.Sprintf("Focus hours per week (%d-%d)", plan.MinHours, plan.MaxHours))
}

// session is what every command needs after startup: the loaded config and
// the developer log.
type session struct {
	cfg config.Config
	log *logging.Logger
}

// setup loads config, applies the theme and opens the log file. A broken
// config or log file never stops a command; both degrade to defaults.
func setup() session {
	cfg, cfgErr := config.Load()

	log, err := logging.New(config.LogPath(cfg), config.GetLogLevel(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (logging disabled)\n", err)
		log = logging.Discard()
	}

	if cfgErr != nil {
		log.WithError(cfgErr).Warn("config unreadable, using defaults")
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", cfgErr)
	} else {
		log.WithField("path", config.ConfigPath()).WithField("exists", config.Exists()).Debug("config loaded")
	}

	name := cfg.Appearance.Theme
	if flagTheme != "" {
		name = flagTheme
	}
	theme.SetActive(name)

	return session{cfg: cfg, log: log}
}

// resolveInput layers explicit flags over the configured defaults, which
// already sit over the built-in default record. Bad saved defaults fall back
// to the built-ins with a warning; bad flags are an error.
func resolveInput(cmd *cobra.Command, rt session) (plan.Input, error) {
	flags := cmd.Flags()

	in, err := rt.cfg.Defaults.Input()
	if err != nil {
		rt.warnDefaults(cmd, err)
		in = plan.Default()
	} else if err := plan.ValidateHours(in.TimePerWeek); err != nil && !flags.Changed("hours") {
		rt.warnDefaults(cmd, fmt.Errorf("defaults.time_per_week: %w", err))
		in = in.WithTimePerWeek(plan.Default().TimePerWeek)
	}

	if flags.Changed("niche") {
		in = in.WithTargetNiche(flagNiche)
	}
	if flags.Changed("goal") {
		in = in.WithGoal(flagGoal)
	}
	if flags.Changed("monetization") {
		in = in.WithMonetization(flagMonetization)
	}
	if flags.Changed("budget") {
		b, err := plan.ParseBudget(flagBudget)
		if err != nil {
			return plan.Input{}, fmt.Errorf("--budget: %w", err)
		}
		in = in.WithBudget(b)
	}
	if flags.Changed("skill") {
		s, err := plan.ParseSkillFocus(flagSkill)
		if err != nil {
			return plan.Input{}, fmt.Errorf("--skill: %w", err)
		}
		in = in.WithSkillFocus(s)
	}
	if flags.Changed("hours") {
		in = in.WithTimePerWeek(flagHours)
	}

	if err := in.Validate(); err != nil {
		return plan.Input{}, err
	}
	return in, nil
}

func (s session) warnDefaults(cmd *cobra.Command, err error) {
	s.log.WithError(err).Warn("config defaults invalid, using built-ins")
	fmt.Fprintf(cmd.ErrOrStderr(), "  Warning: config %v (using built-in default)\n", err)
}
