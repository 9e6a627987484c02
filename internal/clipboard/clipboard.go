// Package clipboard writes mission payloads to the system clipboard or, over
// SSH and in headless sessions, to the terminal via OSC 52.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable wraps every failure to place text on a clipboard.
var ErrUnavailable = errors.New("clipboard unavailable")

// Modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System uses the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Win32 API).
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no system clipboard utility found", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// OSC52 emits an OSC 52 escape sequence so the terminal emulator sets its
// clipboard. It works across SSH but cannot confirm the terminal honored it.
type OSC52 struct {
	Out io.Writer
}

// WriteAll implements Writer.
func (o OSC52) WriteAll(text string) error {
	out := o.Out
	if out == nil {
		out = os.Stderr
	}

	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("%w: osc52: %v", ErrUnavailable, err)
	}
	return nil
}

// Fallback tries Primary and, if it reports ErrUnavailable, Secondary.
type Fallback struct {
	Primary   Writer
	Secondary Writer
}

// WriteAll implements Writer.
func (f Fallback) WriteAll(text string) error {
	err := f.Primary.WriteAll(text)
	if err == nil || !errors.Is(err, ErrUnavailable) || f.Secondary == nil {
		return err
	}
	if err2 := f.Secondary.WriteAll(text); err2 != nil {
		return errors.Join(err, err2)
	}
	return nil
}

// New returns the Writer for mode. An empty mode means ModeAuto.
func New(mode string, out io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		return Fallback{Primary: System{}, Secondary: OSC52{Out: out}}, nil
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return OSC52{Out: out}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q (want %s, %s or %s)", mode, ModeAuto, ModeSystem, ModeOSC52)
	}
}

// SplitTerminal separates w into the part that works off-terminal and whether
// an OSC 52 write to the terminal is needed, alone or as the fallback. A TUI
// must perform the terminal part while it holds the screen.
func SplitTerminal(w Writer) (direct Writer, terminal bool) {
	switch v := w.(type) {
	case OSC52:
		return nil, true
	case Fallback:
		if _, ok := v.Secondary.(OSC52); ok {
			return v.Primary, true
		}
	}
	return w, false
}
