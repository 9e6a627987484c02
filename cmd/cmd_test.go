package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/capitalflow/internal/cli"
	"github.com/theirongolddev/capitalflow/internal/clipboard"
	"github.com/theirongolddev/capitalflow/internal/config"
	"github.com/theirongolddev/capitalflow/internal/logging"
	"github.com/theirongolddev/capitalflow/internal/plan"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClipboard struct {
	err   error
	mode  string
	calls []string
}

func (r *recordingClipboard) WriteAll(text string) error {
	r.calls = append(r.calls, text)
	return r.err
}

// stubClipboard swaps newClipboard for one that returns a recorder failing
// with err.
func stubClipboard(t *testing.T, err error) *recordingClipboard {
	t.Helper()
	rec := &recordingClipboard{err: err}
	orig := newClipboard
	t.Cleanup(func() { newClipboard = orig })
	newClipboard = func(mode string, _ io.Writer) (clipboard.Writer, error) {
		rec.mode = mode
		return rec, nil
	}
	return rec
}

func testSession(cfg config.Config) session {
	return session{cfg: cfg, log: logging.Discard()}
}

// newTestCmd returns a command with fresh input flags parsed from args. The
// flag globals are reset before and after.
func newTestCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("CAPITALFLOW_CLIPBOARD", "")
	t.Setenv("CAPITALFLOW_LOG_LEVEL", "")

	reset := func() {
		flagNiche, flagGoal, flagMonetization = "", "", ""
		flagBudget, flagSkill, flagTheme = "", "", ""
		flagHours = 0
		flagPlain, flagCopy = false, false
	}
	reset()
	t.Cleanup(reset)

	c := &cobra.Command{Use: "test"}
	addInputFlags(c.Flags())
	require.NoError(t, c.ParseFlags(args))

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	return c, &out
}

func TestResolveInput_DefaultsWithoutFlags(t *testing.T) {
	c, _ := newTestCmd(t)

	in, err := resolveInput(c, testSession(config.DefaultConfig()))
	require.NoError(t, err)
	assert.Equal(t, plan.Default(), in)
}

func TestResolveInput_FlagsOverrideConfig(t *testing.T) {
	c, _ := newTestCmd(t, "--niche", "newsletter ops", "-b", "lean", "--skill", "content", "-H", "10")

	cfg := config.DefaultConfig()
	cfg.Defaults.Monetization = "sponsorships"

	in, err := resolveInput(c, testSession(cfg))
	require.NoError(t, err)
	assert.Equal(t, "newsletter ops", in.TargetNiche)
	assert.Equal(t, "sponsorships", in.Monetization)
	assert.Equal(t, plan.BudgetLean, in.Budget)
	assert.Equal(t, plan.SkillContent, in.SkillFocus)
	assert.Equal(t, 10, in.TimePerWeek)
	assert.Equal(t, plan.Default().Goal, in.Goal)
}

func TestResolveInput_RejectsBadFlags(t *testing.T) {
	c, _ := newTestCmd(t, "--budget", "yolo")
	_, err := resolveInput(c, testSession(config.DefaultConfig()))
	assert.ErrorIs(t, err, plan.ErrUnknownBudget)
	assert.Contains(t, err.Error(), "--budget")

	c, _ = newTestCmd(t, "--skill", "sales")
	_, err = resolveInput(c, testSession(config.DefaultConfig()))
	assert.ErrorIs(t, err, plan.ErrUnknownSkillFocus)

	c, _ = newTestCmd(t, "--hours", "2")
	_, err = resolveInput(c, testSession(config.DefaultConfig()))
	assert.ErrorIs(t, err, plan.ErrHoursOutOfRange)
}

func TestResolveInput_BadConfigDefaultsFallBack(t *testing.T) {
	c, out := newTestCmd(t)
	cfg := config.DefaultConfig()
	cfg.Defaults.Budget = "cheap"
	cfg.Defaults.Monetization = "sponsorships"

	l, hook := logtest.NewNullLogger()
	in, err := resolveInput(c, session{cfg: cfg, log: &logging.Logger{Logger: l}})
	require.NoError(t, err)
	assert.Equal(t, plan.Default(), in)

	assert.Contains(t, out.String(), "Warning: config defaults.budget")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.ErrorIs(t, hook.LastEntry().Data[logrus.ErrorKey].(error), plan.ErrUnknownBudget)
}

func TestResolveInput_BadConfigDefaultsStillTakeFlags(t *testing.T) {
	c, _ := newTestCmd(t, "--skill", "community")
	cfg := config.DefaultConfig()
	cfg.Defaults.SkillFocus = "luck"

	in, err := resolveInput(c, testSession(cfg))
	require.NoError(t, err)
	assert.Equal(t, plan.Default().WithSkillFocus(plan.SkillCommunity), in)
}

func TestResolveInput_ConfigHoursOutOfRange(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.TimePerWeek = 80
	cfg.Defaults.Goal = "hire an editor"

	c, out := newTestCmd(t)
	in, err := resolveInput(c, testSession(cfg))
	require.NoError(t, err)
	assert.Equal(t, plan.Default().TimePerWeek, in.TimePerWeek)
	assert.Equal(t, "hire an editor", in.Goal, "valid saved fields survive")
	assert.Contains(t, out.String(), "defaults.time_per_week")

	c, out = newTestCmd(t, "--hours", "20")
	in, err = resolveInput(c, testSession(cfg))
	require.NoError(t, err)
	assert.Equal(t, 20, in.TimePerWeek)
	assert.Empty(t, out.String())
}

func TestRunPlan_BrokenSavedDefaultsStillPrint(t *testing.T) {
	c, out := newTestCmd(t)
	require.NoError(t, os.MkdirAll(config.ConfigDir(), 0o755))
	require.NoError(t, os.WriteFile(config.ConfigPath(), []byte("[defaults]\nbudget = \"cheap\"\n"), 0o600))

	require.NoError(t, runPlan(c, nil))
	assert.Contains(t, out.String(), plan.Generate(plan.Default()))
}

func TestRunPlan_CopyReportsBytes(t *testing.T) {
	clip := stubClipboard(t, nil)
	c, out := newTestCmd(t)
	flagCopy = true

	require.NoError(t, runPlan(c, nil))

	payload := plan.Generate(plan.Default())
	require.Equal(t, []string{payload}, clip.calls)
	assert.Equal(t, "auto", clip.mode)
	assert.Contains(t, out.String(), "Copied "+cli.FormatNumber(int64(len(payload)))+" bytes")
}

func TestRunPlan_CopyFailureReturnsErrorAfterPrinting(t *testing.T) {
	stubClipboard(t, fmt.Errorf("%w: no system clipboard utility found", clipboard.ErrUnavailable))
	c, out := newTestCmd(t)
	flagCopy = true

	err := runPlan(c, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, clipboard.ErrUnavailable)
	assert.Contains(t, err.Error(), "copying payload")
	assert.Contains(t, out.String(), plan.Generate(plan.Default()))
	assert.NotContains(t, out.String(), "Copied")
}

func TestRunPlan_UnknownClipboardMode(t *testing.T) {
	c, _ := newTestCmd(t)
	t.Setenv("CAPITALFLOW_CLIPBOARD", "carrier-pigeon")
	flagCopy = true

	err := runPlan(c, nil)
	assert.ErrorContains(t, err, "unknown clipboard mode")
}

func TestRunPlan_WritesPlainPayloadToNonTerminal(t *testing.T) {
	c, out := newTestCmd(t, "--niche", "newsletter ops", "--hours", "12")

	require.NoError(t, runPlan(c, nil))

	want := plan.Generate(plan.Default().WithTargetNiche("newsletter ops").WithTimePerWeek(12))
	assert.Equal(t, want, out.String())
}

func TestRunPlan_UsesSavedDefaults(t *testing.T) {
	c, out := newTestCmd(t)

	cfg := config.DefaultConfig()
	cfg.Defaults.Budget = "aggressive"
	require.NoError(t, config.Save(cfg))

	require.NoError(t, runPlan(c, nil))
	assert.Contains(t, out.String(), "Aggressive - $600-$1k/mo")
}

func TestRunPlan_LogsToCacheDir(t *testing.T) {
	c, _ := newTestCmd(t)
	t.Setenv("CAPITALFLOW_LOG_LEVEL", "debug")

	require.NoError(t, runPlan(c, nil))

	data, err := os.ReadFile(config.LogPath(config.DefaultConfig()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "payload generated")
}

func TestRunOptions_ListsEveryChoice(t *testing.T) {
	c, out := newTestCmd(t)

	require.NoError(t, runOptions(c, nil))

	for _, b := range plan.Budgets() {
		assert.Contains(t, out.String(), b.Tier().Range)
	}
	for _, s := range plan.SkillFoci() {
		assert.Contains(t, out.String(), s.Label())
	}
	assert.Contains(t, out.String(), "4h/wk to 40h/wk")
}

func TestRunConfig_ShowsEffectiveValues(t *testing.T) {
	c, out := newTestCmd(t)
	t.Setenv("CAPITALFLOW_CLIPBOARD", "osc52")

	require.NoError(t, runConfig(c, nil))
	assert.Contains(t, out.String(), "using defaults")
	assert.Contains(t, out.String(), "osc52 (from CAPITALFLOW_CLIPBOARD)")
	assert.Contains(t, out.String(), config.ConfigPath())
}
