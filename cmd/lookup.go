package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hsbacot/ghfind/search"
	"github.com/hsbacot/ghfind/ui"
)

// OutputFormat selects how RunLookup prints a profile.
type OutputFormat int

const (
	// FormatCard renders the styled profile card.
	FormatCard OutputFormat = iota
	// FormatPlain prints aligned key/value lines.
	FormatPlain
	// FormatJSON prints indented JSON.
	FormatJSON
)

// ParseOutputFormat maps a --output flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "card":
		return FormatCard, nil
	case "plain", "text":
		return FormatPlain, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want card, plain or json)", s)
	}
}

// LookupOptions configures RunLookup.
type LookupOptions struct {
	Format OutputFormat
	Out    io.Writer
}

// ErrLookupFailed is returned when the search resolves with an error message.
var ErrLookupFailed = errors.New("lookup failed")

// RunLookup searches for a single username and prints the result.
func RunLookup(ctx context.Context, ctrl *search.Controller, username string, opts LookupOptions) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username is required")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	ctrl.Search(username)

	state, err := awaitResult(ctx, ctrl)
	if err != nil {
		return err
	}

	if state.ErrMessage != "" {
		return fmt.Errorf("%w: %s", ErrLookupFailed, state.ErrMessage)
	}
	if state.Profile == nil {
		return fmt.Errorf("%w: no profile for %s", ErrLookupFailed, username)
	}

	switch opts.Format {
	case FormatJSON:
		return printJSON(out, toJSON(*state.Profile))
	case FormatPlain:
		printPlain(out, *state.Profile)
	default:
		fmt.Fprintln(out, ui.ProfileCard(*state.Profile))
	}
	return nil
}

// awaitResult waits for the controller to leave the loading state.
func awaitResult(ctx context.Context, ctrl *search.Controller) (search.State, error) {
	for {
		select {
		case <-ctx.Done():
			ctrl.Clear()
			return search.State{}, ctx.Err()
		case state, ok := <-ctrl.Changes():
			if !ok {
				return search.State{}, errors.New("search closed before completing")
			}
			if !state.Loading {
				return state, nil
			}
		}
	}
}
