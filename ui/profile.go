package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/hsbacot/ghfind/client"
)

var (
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	handleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// ProfileCard renders a profile as a bordered card.
func ProfileCard(p client.Profile) string {
	var b strings.Builder

	b.WriteString(nameStyle.Render(p.Name()))
	if p.Name() != p.Handle {
		b.WriteString(" " + handleStyle.Render("@"+p.Handle))
	}
	b.WriteString("\n")

	if bio := strings.TrimSpace(p.Bio()); bio != "" {
		b.WriteString(lipgloss.NewStyle().Width(60).Render(bio))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("📦 %s repos  👥 %s followers  ➡️  %s following",
		humanize.Comma(int64(p.PublicRepos)),
		humanize.Comma(int64(p.Followers)),
		humanize.Comma(int64(p.Following)))))
	b.WriteString("\n")
	b.WriteString(handleStyle.Render(p.AvatarURL))

	return cardStyle.Render(b.String())
}
