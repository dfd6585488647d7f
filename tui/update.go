package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hsbacot/ghfind/search"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.spinner.Tick,
		waitForChange(m.ctrl.Changes()),
	}
	if strings.TrimSpace(m.initialQuery) != "" {
		m.search(m.initialQuery)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and state transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.search(m.input.Value())
			return m, nil
		case tea.KeyEsc:
			m.logger.Debug("Clear requested")
			m.ctrl.Clear()
			return m, nil
		}

	case stateChangedMsg:
		if !msg.ok {
			// Controller closed
			return m, nil
		}
		m.state = msg.state
		return m, waitForChange(m.ctrl.Changes())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// search must run on the Update goroutine so requests reach the controller
// in key order.
func (m Model) search(text string) {
	m.logger.Debug("Search requested", "query", text)
	m.ctrl.Search(text)
}

// Command functions (run async)

// waitForChange blocks until the controller publishes a new state.
func waitForChange(changes <-chan search.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-changes
		return stateChangedMsg{state: s, ok: ok}
	}
}
