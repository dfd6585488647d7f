// Package search owns the lifecycle of a profile lookup: it issues requests,
// supersedes stale ones and publishes the resulting view state.
package search

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hsbacot/ghfind/client"
)

// Fetcher resolves a username to a profile. *client.Client implements it.
type Fetcher interface {
	FetchUser(ctx context.Context, username string) (*client.Profile, error)
}

// State is a snapshot of the search view state.
//
// Profile and ErrMessage are never both set, and Loading implies both are
// empty. Each snapshot carries its own copy of the profile.
type State struct {
	Query      string
	Loading    bool
	Profile    *client.Profile
	ErrMessage string
}

func (s State) clone() State {
	if s.Profile != nil {
		s.Profile = s.Profile.Clone()
	}
	return s
}

// Options configures a Controller.
type Options struct {
	Logger *log.Logger
}

// Controller drives searches against a Fetcher. It is safe for concurrent use.
type Controller struct {
	fetcher Fetcher
	logger  *log.Logger

	mu      sync.Mutex
	state   State
	current uint64 // id of the only lookup allowed to write state
	cancel  context.CancelFunc
	closed  bool
	changes chan State

	wg sync.WaitGroup
}

// New creates a Controller with an empty state.
func New(fetcher Fetcher, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		fetcher: fetcher,
		logger:  logger,
		changes: make(chan State, 1),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Changes delivers state updates. Only the newest undelivered state is
// buffered, so a slow reader skips intermediate states but always observes
// the latest one. The channel is closed by Close.
func (c *Controller) Changes() <-chan State {
	return c.changes
}

// Search starts a lookup for text, superseding any lookup in flight.
// Blank text clears the result without touching the network.
func (c *Controller) Search(text string) {
	query := strings.TrimSpace(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.supersedeLocked()
	c.state.Query = query

	if query == "" {
		c.state.Loading = false
		c.state.Profile = nil
		c.state.ErrMessage = ""
		c.publishLocked()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	id := c.current

	c.state.Loading = true
	c.state.Profile = nil
	c.state.ErrMessage = ""
	c.publishLocked()

	c.logger.Debug("Lookup started", "username", query, "lookup", id)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()

		profile, err := c.fetcher.FetchUser(ctx, query)
		c.resolve(id, profile, err)
	}()
}

// Clear cancels any lookup in flight and empties the result. The query is
// left as it was.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.supersedeLocked()
	c.state.Loading = false
	c.state.Profile = nil
	c.state.ErrMessage = ""
	c.publishLocked()
}

// Close cancels any lookup in flight, waits for it to return and closes the
// Changes channel. Further calls to Search and Clear are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.supersedeLocked()
	c.closed = true
	close(c.changes)
	c.mu.Unlock()

	c.wg.Wait()
}

// supersedeLocked invalidates the current lookup. Its result, whenever it
// arrives, will no longer match c.current.
func (c *Controller) supersedeLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
		c.logger.Debug("Lookup superseded", "lookup", c.current)
	}
	c.current++
}

func (c *Controller) resolve(id uint64, profile *client.Profile, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || id != c.current {
		c.logger.Debug("Discarding stale lookup", "lookup", id, "current", c.current)
		return
	}
	c.cancel = nil

	if err != nil {
		c.logger.Debug("Lookup failed", "username", c.state.Query, "error", err)
		c.state.Profile = nil
		c.state.ErrMessage = Message(err)
	} else if profile == nil {
		c.logger.Debug("Lookup returned no profile", "username", c.state.Query)
		c.state.Profile = nil
		c.state.ErrMessage = Message(client.ErrEmptyPayload)
	} else {
		c.logger.Debug("Lookup completed", "username", profile.Handle)
		c.state.Profile = profile.Clone()
		c.state.ErrMessage = ""
	}
	c.state.Loading = false
	c.publishLocked()
}

// publishLocked replaces any undelivered state with the current one.
func (c *Controller) publishLocked() {
	select {
	case <-c.changes:
	default:
	}
	c.changes <- c.state.clone()
}
