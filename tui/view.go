package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hsbacot/ghfind/ui"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// View renders the UI based on the current state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("GitHub profile search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.state.Loading:
		fmt.Fprintf(&b, "%s Searching GitHub for '%s'...",
			spinnerStyle.Render(m.spinner.View()), m.state.Query)
	case m.state.ErrMessage != "":
		b.WriteString(errorStyle.Render("✗ " + m.state.ErrMessage))
	case m.state.Profile != nil:
		b.WriteString(ui.ProfileCard(*m.state.Profile))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: search • esc: clear • ctrl+c: quit"))
	b.WriteString("\n")

	return b.String()
}
