package tui

import "github.com/hsbacot/ghfind/search"

// Message types for Bubble Tea state transitions

type stateChangedMsg struct {
	state search.State
	ok    bool
}
