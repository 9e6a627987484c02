// Package tui provides the interactive Bubble Tea mission planner.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/theirongolddev/capitalflow/internal/clipboard"
	"github.com/theirongolddev/capitalflow/internal/plan"
	"github.com/theirongolddev/capitalflow/internal/tui/components"
	"github.com/theirongolddev/capitalflow/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Options configures a new App.
type Options struct {
	Input      plan.Input
	Clipboard  clipboard.Writer
	Log        logrus.FieldLogger
	ShowErrors bool
}

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	gen   int
	bytes int
	err   error
}

// terminalCopyMsg asks the App to finish copy gen with an OSC 52 write after
// the system clipboard reported prev.
type terminalCopyMsg struct {
	gen     int
	payload string
	prev    error
}

// clearCopiedMsg ends the "copied" acknowledgement started by copy gen.
type clearCopiedMsg struct {
	gen int
}

const (
	minTerminalWidth = 60
	wideWidth        = 116
	maxContentWidth  = 160
	formPanelWidth   = 46
	minPreviewHeight = 5

	copiedFor = 3 * time.Second
)

// tick schedules the end of the copied acknowledgement.
var tick = tea.Tick

type keyMap struct {
	Copy     key.Binding
	Dismiss  key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// App is the root Bubble Tea model.
type App struct {
	// Record and its rendering
	input   plan.Input
	payload string

	// Form bound to values
	values *formValues
	form   *huh.Form

	preview viewport.Model

	clip       clipboard.Writer
	log        logrus.FieldLogger
	showErrors bool

	// Copy acknowledgement
	copied   bool
	copyGen  int
	notice   string
	quitting bool

	width  int
	height int
	keys   keyMap
}

// NewApp creates a new TUI app model seeded from opts.Input.
func NewApp(opts Options) App {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	values := newFormValues(opts.Input)
	a := App{
		input:      opts.Input,
		values:     values,
		form:       newPlanForm(values),
		preview:    viewport.New(0, 0),
		clip:       opts.Clipboard,
		log:        log,
		showErrors: opts.ShowErrors,
		keys:       newKeyMap(),
	}
	a.regenerate()
	return a
}

// Input returns the current record.
func (a App) Input() plan.Input { return a.input }

// Payload returns the formatted mission payload for the current record.
func (a App) Payload() string { return a.payload }

// Copied reports whether the copied acknowledgement is showing.
func (a App) Copied() bool { return a.copied }

// Notice returns the clipboard error notice, if any.
func (a App) Notice() string { return a.notice }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, a.keys.Copy):
			cmd := a.startCopy()
			return a, cmd
		case key.Matches(msg, a.keys.Dismiss) && a.notice != "":
			a.notice = ""
			return a, nil
		case key.Matches(msg, a.keys.PageUp):
			a.preview.PageUp()
			return a, nil
		case key.Matches(msg, a.keys.PageDown):
			a.preview.PageDown()
			return a, nil
		}

	case copyResultMsg:
		if msg.gen != a.copyGen {
			return a, nil
		}
		if msg.err != nil {
			a.copied = false
			a.log.WithError(msg.err).Warn("copy failed")
			if a.showErrors {
				a.notice = noticeFor(msg.err)
			}
			return a, nil
		}
		a.log.WithField("bytes", msg.bytes).Info("payload copied")
		a.copied = true
		a.notice = ""
		gen := msg.gen
		return a, tick(copiedFor, func(time.Time) tea.Msg {
			return clearCopiedMsg{gen: gen}
		})

	case terminalCopyMsg:
		if msg.gen != a.copyGen {
			return a, nil
		}
		return a, terminalCopy(msg.gen, msg.payload, msg.prev)

	case clearCopiedMsg:
		if msg.gen == a.copyGen && !a.quitting {
			a.copied = false
		}
		return a, nil
	}

	return a.updateForm(msg)
}

// updateForm forwards msg to the form, then folds the bound values back into
// the record. Submitting the last field copies and starts a fresh form.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if next := a.values.apply(a.input); next != a.input {
		a.input = next
		a.regenerate()
	}

	if a.form.State == huh.StateCompleted {
		a.form = newPlanForm(a.values)
		a.resize()
		next := tea.Batch(a.form.Init(), a.startCopy())
		return a, next
	}

	return a, cmd
}

func (a *App) regenerate() {
	a.payload = plan.Generate(a.input)
	a.preview.SetContent(a.payload)
}

func (a *App) startCopy() tea.Cmd {
	a.copyGen++
	gen := a.copyGen
	payload := a.payload
	if a.clip == nil {
		return func() tea.Msg {
			return copyResultMsg{gen: gen, err: fmt.Errorf("%w: no clipboard configured", clipboard.ErrUnavailable)}
		}
	}

	direct, terminal := clipboard.SplitTerminal(a.clip)
	if direct == nil {
		return terminalCopy(gen, payload, nil)
	}
	return func() tea.Msg {
		err := direct.WriteAll(payload)
		if terminal && errors.Is(err, clipboard.ErrUnavailable) {
			return terminalCopyMsg{gen: gen, payload: payload, prev: err}
		}
		return copyResultMsg{gen: gen, bytes: len(payload), err: err}
	}
}

// terminalCopy writes the OSC 52 sequence through tea.Exec so the renderer is
// paused and the escape cannot land inside a frame.
func terminalCopy(gen int, payload string, prev error) tea.Cmd {
	return tea.Exec(&osc52Exec{text: payload}, func(err error) tea.Msg {
		if err != nil && prev != nil {
			err = errors.Join(prev, err)
		}
		return copyResultMsg{gen: gen, bytes: len(payload), err: err}
	})
}

// osc52Exec is a tea.ExecCommand that emits text to the program's output.
type osc52Exec struct {
	text string
	out  io.Writer
}

func (e *osc52Exec) Run() error {
	return clipboard.OSC52{Out: e.out}.WriteAll(e.text)
}

func (e *osc52Exec) SetStdin(io.Reader)    {}
func (e *osc52Exec) SetStdout(w io.Writer) { e.out = w }
func (e *osc52Exec) SetStderr(io.Writer)   {}

func noticeFor(err error) string {
	text := strings.ReplaceAll(err.Error(), "\n", "; ")
	if errors.Is(err, clipboard.ErrUnavailable) {
		text = strings.TrimPrefix(text, clipboard.ErrUnavailable.Error()+": ")
		return "Clipboard unavailable: " + text
	}
	return "Copy failed: " + text
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isWide() bool {
	return a.contentWidth() >= wideWidth
}

// previewWidth is the outer width of the right (or lower) column.
func (a App) previewWidth() int {
	if a.isWide() {
		return a.contentWidth() - formPanelWidth - 1
	}
	return a.contentWidth()
}

func (a App) formWidth() int {
	if a.isWide() {
		return formPanelWidth
	}
	return a.contentWidth()
}

// resize recomputes form and preview dimensions for the current terminal.
func (a *App) resize() {
	if a.width == 0 {
		return
	}
	a.form = a.form.WithWidth(a.formWidth() - 2)

	used := lipgloss.Height(a.viewHeader()) +
		lipgloss.Height(a.viewMetrics()) +
		1 + // status bar
		3 // preview card border + title
	if !a.isWide() {
		used += lipgloss.Height(a.viewFormPanel())
	}

	h := a.height - used
	if h < minPreviewHeight {
		h = minPreviewHeight
	}
	a.preview.Width = components.CardInnerWidth(a.previewWidth())
	a.preview.Height = h
	a.preview.SetContent(a.payload)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  capitalflow needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return lipgloss.NewStyle().Foreground(theme.Active.Orange).Render(msg)
}

func (a App) viewHeader() string {
	t := theme.Active

	kicker := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true).
		Render("CAPITALFLOW ERP // PASSIVE INCOME OS")
	title := lipgloss.NewStyle().Foreground(t.Accent).
		Render("Deploy parallel income stacks with hacker-terminal precision.")

	return " " + kicker + "\n " + title + "\n"
}

func (a App) viewMetrics() string {
	tier := a.input.Budget.Tier()
	gaugeW := components.CardInnerWidth(components.LayoutRow(a.previewWidth(), 3)[0])

	return components.MetricCardRow([]components.Metric{
		{
			Label:  "Ops Tempo",
			Value:  fmt.Sprintf("%dh/wk", a.input.TimePerWeek),
			Detail: components.TempoGauge(a.input.TimePerWeek, plan.MaxHours, gaugeW),
		},
		{Label: "Capital", Value: tier.Range, Detail: tier.Label},
		{Label: "Skill Stack", Value: a.input.SkillFocus.Label()},
	}, a.previewWidth())
}

func (a App) viewFormPanel() string {
	return lipgloss.NewStyle().
		Width(a.formWidth()).
		Padding(0, 1).
		Render(a.form.View() + "\n\n" + components.CopyButton(a.copied))
}

func (a App) viewPreview() string {
	return components.ContentCard("MISSION PAYLOAD", a.preview.View(), a.previewWidth())
}

func (a App) statusBindings() []key.Binding {
	bindings := []key.Binding{a.keys.Copy, a.keys.PageUp, a.keys.Quit}
	if a.notice != "" {
		bindings = append(bindings, a.keys.Dismiss)
	}
	return bindings
}

func (a App) viewMain() string {
	right := a.viewMetrics() + "\n" + a.viewPreview()

	var body string
	if a.isWide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.viewFormPanel(), " ", right)
	} else {
		body = a.viewFormPanel() + "\n" + right
	}

	return a.viewHeader() + "\n" + body + "\n" +
		components.RenderStatusBar(a.contentWidth(), a.statusBindings(), a.notice)
}
