package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hsbacot/ghfind/client"
)

// profileJSON is the --json output shape
type profileJSON struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatar_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

func toJSON(p client.Profile) profileJSON {
	out := profileJSON{
		Login:       p.Handle,
		Bio:         p.Bio(),
		AvatarURL:   p.AvatarURL,
		PublicRepos: p.PublicRepos,
		Followers:   p.Followers,
		Following:   p.Following,
	}
	if p.DisplayName != nil {
		out.Name = *p.DisplayName
	}
	return out
}

// printJSON marshals data to indented JSON
func printJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// printPlain writes the profile as aligned key/value lines
func printPlain(w io.Writer, p client.Profile) {
	printHeader(w, p.Name())
	fmt.Fprintf(w, "Login:      %s\n", p.Handle)
	if bio := p.Bio(); bio != "" {
		fmt.Fprintf(w, "Bio:        %s\n", bio)
	}
	fmt.Fprintf(w, "Repos:      %s\n", humanize.Comma(int64(p.PublicRepos)))
	fmt.Fprintf(w, "Followers:  %s\n", humanize.Comma(int64(p.Followers)))
	fmt.Fprintf(w, "Following:  %s\n", humanize.Comma(int64(p.Following)))
	fmt.Fprintf(w, "Avatar:     %s\n", p.AvatarURL)
}

// printHeader prints a title with an underline
func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("━", len([]rune(title))))
}
