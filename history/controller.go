// Package history implements paginated-list retrieval over a
// list-returning endpoint, generic over the record type. It owns the
// recent-vs-all toggle; the two modes are independent server queries.
package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nycast/client/domain"
	"github.com/nycast/client/transport"
)

// RecentLimit is the fixed recent-window size. It is a contract
// constant, not user-configurable.
const RecentLimit = 5

// request is the listing request body. A nil Amount is the unbounded
// sentinel: the field is omitted and the server returns everything.
type request struct {
	Amount *int `json:"amount,omitempty"`
}

type listResponse[R any] struct {
	History []R `json:"history"`
}

// Controller retrieves an ordered history of R from one endpoint.
type Controller[R any] struct {
	gateway *transport.Client
	path    string

	mu      sync.Mutex
	mode    domain.HistoryMode
	entries []R
}

// NewController creates a history controller for path, starting in
// recent mode with no entries loaded.
func NewController[R any](gateway *transport.Client, path string) *Controller[R] {
	return &Controller[R]{
		gateway: gateway,
		path:    path,
		mode:    domain.HistoryModeRecent,
	}
}

// Load issues one listing request at the active mode's limit and
// replaces the whole entries sequence with the result. On session
// failure the view is left untouched and the error propagates for the
// caller to force re-authentication; on any other failure the view
// becomes empty, never partially populated.
func (c *Controller[R]) Load(ctx context.Context) error {
	c.mu.Lock()
	mode := c.mode
	c.mu.Unlock()

	var body request
	if mode == domain.HistoryModeRecent {
		limit := RecentLimit
		body.Amount = &limit
	}

	var resp listResponse[R]
	if err := c.gateway.PostJSON(ctx, c.path, body, &resp); err != nil {
		if errors.Is(err, domain.ErrSessionInvalid) {
			return err
		}
		c.mu.Lock()
		c.entries = nil
		c.mu.Unlock()
		return fmt.Errorf("history unavailable: %w", err)
	}

	c.mu.Lock()
	c.entries = resp.History
	c.mu.Unlock()
	return nil
}

// Toggle flips between recent and all mode and re-loads at the new
// limit. Toggling twice lands back on the original limit.
func (c *Controller[R]) Toggle(ctx context.Context) error {
	c.mu.Lock()
	if c.mode == domain.HistoryModeRecent {
		c.mode = domain.HistoryModeAll
	} else {
		c.mode = domain.HistoryModeRecent
	}
	c.mu.Unlock()

	return c.Load(ctx)
}

// Mode returns the active history mode.
func (c *Controller[R]) Mode() domain.HistoryMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Entries returns a copy of the current view.
func (c *Controller[R]) Entries() []R {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]R, len(c.entries))
	copy(out, c.entries)
	return out
}
