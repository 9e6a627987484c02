package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/capitalflow/internal/cli"
	"github.com/theirongolddev/capitalflow/internal/config"
	"github.com/theirongolddev/capitalflow/internal/plan"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagPlain bool
	flagCopy  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the mission payload without the interactive form",
	Example: `  capitalflow plan --niche "newsletter ops" --budget lean --skill content --hours 10
  capitalflow plan --copy`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&flagPlain, "plain", false, "Never style the output")
	planCmd.Flags().BoolVarP(&flagCopy, "copy", "c", false, "Also copy the payload to the clipboard")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	rt := setup()
	defer rt.log.Close()

	in, err := resolveInput(cmd, rt)
	if err != nil {
		return err
	}

	payload := plan.Generate(in)
	rt.log.WithField("bytes", len(payload)).Debug("payload generated")

	out := cmd.OutOrStdout()
	if !flagPlain && isTerminal(out) {
		fmt.Fprint(out, cli.RenderPlan(payload))
	} else {
		fmt.Fprint(out, payload)
	}

	if !flagCopy {
		return nil
	}

	clip, err := newClipboard(config.GetClipboardMode(rt.cfg), os.Stderr)
	if err != nil {
		return err
	}
	if err := clip.WriteAll(payload); err != nil {
		rt.log.WithError(err).Warn("copy failed")
		return fmt.Errorf("copying payload: %w", err)
	}
	rt.log.WithField("bytes", len(payload)).Info("payload copied")
	fmt.Fprintf(cmd.ErrOrStderr(), "  Copied %s bytes to clipboard\n", cli.FormatNumber(int64(len(payload))))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
