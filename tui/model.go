package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hsbacot/ghfind/search"
)

// Options contains configuration for the Model
type Options struct {
	// Query prefills the search box and starts a search on Init.
	Query  string
	Logger *log.Logger
}

// Model is the Bubble Tea model for ghfind. It only renders the controller's
// state and forwards search and clear requests to it.
type Model struct {
	// State
	state    search.State
	quitting bool

	// UI Components
	input   textinput.Model
	spinner spinner.Model
	logger  *log.Logger

	// Services
	ctrl *search.Controller

	initialQuery string
}

// NewModel creates a new Bubble Tea model
func NewModel(ctrl *search.Controller, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "GitHub username"
	ti.Prompt = "🔍 "
	ti.CharLimit = 39
	ti.Width = 40
	ti.SetValue(opts.Query)
	ti.Focus()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		state:        ctrl.State(),
		input:        ti,
		spinner:      s,
		logger:       logger,
		ctrl:         ctrl,
		initialQuery: opts.Query,
	}
}

// State returns the last state the model rendered
func (m Model) State() search.State {
	return m.state
}
