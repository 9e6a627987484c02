package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/capitalflow/internal/config"
	"github.com/theirongolddev/capitalflow/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive mission planner (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	rt := setup()
	defer rt.log.Close()

	in, err := resolveInput(cmd, rt)
	if err != nil {
		return err
	}

	clip, err := newClipboard(config.GetClipboardMode(rt.cfg), os.Stderr)
	if err != nil {
		return err
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Input:      in,
		Clipboard:  clip,
		Log:        rt.log,
		ShowErrors: rt.cfg.Clipboard.ShowErrors,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	rt.log.WithField("budget", in.Budget).WithField("skill", in.SkillFocus).Info("tui started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
