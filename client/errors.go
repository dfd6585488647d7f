package client

import (
	"errors"
	"fmt"
)

// Errors returned by FetchUser. Callers match them with errors.Is.
var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidResponse  = errors.New("invalid response")
	ErrEmptyPayload     = errors.New("empty payload")
	ErrDecoding         = errors.New("decoding error")
)

func errorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
