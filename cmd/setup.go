package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/capitalflow/internal/config"
	"github.com/theirongolddev/capitalflow/internal/plan"
	"github.com/theirongolddev/capitalflow/internal/tui"
	"github.com/theirongolddev/capitalflow/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for mission defaults and appearance",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	rt := setup()
	defer rt.log.Close()
	cfg := rt.cfg
	out := cmd.OutOrStdout()

	in, err := cfg.Defaults.Input()
	if err != nil {
		rt.log.WithError(err).Warn("stored defaults invalid, starting from built-ins")
		in = plan.Default()
	}

	fmt.Fprintln(out)
	if config.Exists() {
		fmt.Fprintln(out, "  Current mission defaults loaded. Edit anything below.")
	} else {
		fmt.Fprintln(out, "  Welcome to CapitalFlow. Set the defaults the form opens with.")
	}
	fmt.Fprintln(out)

	s := tui.NewSetup(in, cfg.Appearance.Theme, cfg.Clipboard.Mode)
	if err := s.Form().Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, "  Setup cancelled.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg.Defaults.SetInput(s.Input())
	cfg.Appearance.Theme = s.Theme
	cfg.Clipboard.Mode = s.ClipboardMode
	theme.SetActive(s.Theme)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	rt.log.WithField("path", config.ConfigPath()).Info("config saved")

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.ConfigPath())
	fmt.Fprintln(out, "  Run `capitalflow setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
