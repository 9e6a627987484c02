// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and draining
// the returned Cmds in the calling goroutine's order. Cmds that block (cursor
// blinks, tea.Tick timers) are run with a short timeout and skipped, so tests
// deliver timer messages themselves.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth is the safety limit for command draining to prevent infinite loops.
const MaxDrainDepth = 100

// cmdTimeout is how long to wait for a Cmd to return before skipping it.
// Message factories return in microseconds; blink and tick Cmds block for
// hundreds of milliseconds or more.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain.
	Quitting bool

	// Skipped counts Cmds that timed out during drain.
	Skipped int
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for the given model and applies options.
// Call DrainInit() after construction to process the model's Init() command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends an initial WindowSizeMsg before any other processing.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// DrainInit executes the model's Init() command and drains all resulting messages.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// SendNoDrain dispatches a message and returns the Cmd without running it.
func (d *Driver) SendNoDrain(msg tea.Msg) tea.Cmd {
	d.T.Helper()
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

// PressKey sends a character key (rune).
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Press sends a non-rune key such as tea.KeyTab or tea.KeyCtrlY.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Press(tea.KeyEnter)
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Press(tea.KeyEsc)
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Press(tea.KeyCtrlC)
}

// Type sends a string character by character as individual key events.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// Backspace sends n backspaces.
func (d *Driver) Backspace(n int) {
	d.T.Helper()
	for range n {
		d.Press(tea.KeyBackspace)
	}
}

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := execCmdWithTimeout(cmd)
	if !ok {
		d.Skipped++
		return
	}
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if cmds, ok := cmdList(msg); ok {
		for _, sub := range cmds {
			d.drainCmd(sub, depth+1)
		}
		return
	}

	if _, ok := msg.(tea.QuitMsg); ok {
		// Normally intercepted by the runtime, so record it here.
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

var cmdType = reflect.TypeOf((*tea.Cmd)(nil)).Elem()

// cmdList unpacks tea.BatchMsg and the runtime's unexported sequence message,
// both of which are slices of Cmds. Sequences are drained in order, which is
// all the runtime guarantees for them anyway.
func cmdList(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

// execCmdWithTimeout runs a tea.Cmd in a goroutine. ok is false when the
// Cmd did not return within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) (msg tea.Msg, ok bool) {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// isCursorBlink detects the unexported blink messages from bubbles/cursor,
// which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
