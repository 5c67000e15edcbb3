// Package balance implements the balance query, top-up and status
// purchase operations. The displayed balance is always the most recent
// server-confirmed value; nothing is ever computed client-side.
package balance

import (
	"context"
	"log"
	"math"
	"sync"

	"github.com/nycast/client/domain"
	"github.com/nycast/client/history"
	"github.com/nycast/client/session"
	"github.com/nycast/client/transport"
)

type topUpRequest struct {
	Amount float64 `json:"amount"`
}

type topUpResponse struct {
	NewBalance float64 `json:"new_balance"`
	Amount     float64 `json:"amount,omitempty"`
}

type purchaseRequest struct {
	Status domain.Tier `json:"status"`
}

// Controller owns the balance state and its history view.
type Controller struct {
	gateway  *transport.Client
	sessions *session.Manager

	// History is the balance-domain history view; refreshed after every
	// successful mutation at whatever mode is active.
	History *history.Controller[domain.BalanceEntry]

	mu      sync.Mutex
	balance *float64
}

// NewController creates a balance controller with an unknown balance.
func NewController(gateway *transport.Client, sessions *session.Manager) *Controller {
	return &Controller{
		gateway:  gateway,
		sessions: sessions,
		History:  history.NewController[domain.BalanceEntry](gateway, "balance/history"),
	}
}

// Load seeds the balance from the user-info endpoint. This is the only
// read path for the balance; mutations update it from their own
// responses.
func (c *Controller) Load(ctx context.Context) (*domain.User, error) {
	user, err := c.sessions.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	c.setBalance(user.Balance)
	return user, nil
}

// TopUp credits amount to the account. Non-finite or non-positive
// amounts are rejected locally without any network call. On success the
// balance is replaced with the server-confirmed value before the
// history refresh is even attempted.
func (c *Controller) TopUp(ctx context.Context, amount float64) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, &domain.ValidationError{Field: "amount", Reason: "must be a finite number"}
	}
	if amount <= 0 {
		return 0, &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	var resp topUpResponse
	if err := c.gateway.PostJSON(ctx, "balance/top_up", topUpRequest{Amount: amount}, &resp); err != nil {
		return 0, err
	}

	c.setBalance(resp.NewBalance)
	c.refreshHistory(ctx)
	return resp.NewBalance, nil
}

// Purchase buys or extends a paid status tier. Tier is a closed
// enumeration; callers pass one of the Tier constants. The returned
// receipt carries the fields presentation renders verbatim.
func (c *Controller) Purchase(ctx context.Context, tier domain.Tier) (*domain.Receipt, error) {
	var receipt domain.Receipt
	if err := c.gateway.PostJSON(ctx, "balance/purchase", purchaseRequest{Status: tier}, &receipt); err != nil {
		return nil, err
	}

	c.setBalance(receipt.RemainingBalance)
	c.refreshHistory(ctx)
	return &receipt, nil
}

// Balance returns the current server-confirmed balance. ok is false
// until the first successful load or mutation.
func (c *Controller) Balance() (value float64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.balance == nil {
		return 0, false
	}
	return *c.balance, true
}

func (c *Controller) setBalance(v float64) {
	c.mu.Lock()
	c.balance = &v
	c.mu.Unlock()
}

// refreshHistory re-loads the history view after a mutation. The
// refresh is an independent call; its failure never rolls back the
// mutation.
func (c *Controller) refreshHistory(ctx context.Context) {
	if err := c.History.Load(ctx); err != nil {
		log.Printf("WARN: balance history refresh failed: %v", err)
	}
}
