package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptUsername asks for a GitHub username on the terminal.
func PromptUsername() (string, error) {
	var username string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub username").
				Placeholder("octocat").
				Value(&username).
				Validate(validateUsername),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(username), nil
}

func validateUsername(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("username is required")
	}
	return nil
}
