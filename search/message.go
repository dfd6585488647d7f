package search

import (
	"context"
	"errors"

	"github.com/hsbacot/ghfind/client"
)

// Message converts a lookup error into text for display.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, client.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, client.ErrMalformedRequest):
		return "That username can't be searched"
	case errors.Is(err, client.ErrEmptyPayload):
		return "GitHub returned an empty response"
	case errors.Is(err, client.ErrDecoding):
		return "Couldn't read the profile returned by GitHub"
	case errors.Is(err, client.ErrInvalidResponse):
		return "GitHub returned an invalid response"
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out"
	default:
		return "Something went wrong: " + err.Error()
	}
}
