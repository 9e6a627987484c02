package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

type counter struct {
	keys  string
	pings int
}

func (c counter) Init() tea.Cmd {
	return tea.Sequence(ping, tea.Batch(ping, ping))
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pingMsg:
		c.pings++
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return c, tea.Quit
		case tea.KeyEnter:
			return c, tea.Tick(time.Hour, func(time.Time) tea.Msg { return pingMsg{} })
		}
		c.keys += msg.String()
	}
	return c, nil
}

func (c counter) View() string { return c.keys }

func ping() tea.Msg { return pingMsg{} }

func TestDriver_DrainsSequencesAndBatches(t *testing.T) {
	d := New(t, counter{})
	d.DrainInit()
	assert.Equal(t, 3, d.Model.(counter).pings)
}

func TestDriver_SkipsBlockingCmds(t *testing.T) {
	d := New(t, counter{})
	d.PressEnter()
	assert.Equal(t, 0, d.Model.(counter).pings)
	assert.Equal(t, 1, d.Skipped)
}

func TestDriver_TypeAndQuit(t *testing.T) {
	d := New(t, counter{})
	d.Type("ab")
	assert.Equal(t, "ab", d.View())

	d.PressCtrlC()
	assert.True(t, d.Quitting)

	d.Type("c")
	assert.Equal(t, "ab", d.View())
}
