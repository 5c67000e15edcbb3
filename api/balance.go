package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nycast/client/domain"
)

type topUpBody struct {
	Amount float64 `json:"amount"`
}

type purchaseBody struct {
	Tier domain.Tier `json:"tier"`
}

type balanceResponse struct {
	Balance *float64 `json:"balance"`
}

type historyResponse[R any] struct {
	Mode    domain.HistoryMode `json:"mode"`
	Entries []R                `json:"entries"`
}

// GetBalance returns the last server-confirmed balance, null when no
// load or mutation has completed yet.
func (h *Handler) GetBalance(c echo.Context) error {
	var resp balanceResponse
	if v, ok := h.balances.Balance(); ok {
		resp.Balance = &v
	}
	return c.JSON(http.StatusOK, resp)
}

// TopUp credits the account and returns the new balance.
func (h *Handler) TopUp(c echo.Context) error {
	var body topUpBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	newBalance, err := h.balances.TopUp(c.Request().Context(), body.Amount)
	if err != nil {
		return h.fail(c, err, "top-up failed")
	}
	return c.JSON(http.StatusOK, map[string]float64{"new_balance": newBalance})
}

// Purchase buys or extends a paid status tier. Unknown tiers are
// rejected here; the controller contract takes only the closed set.
func (h *Handler) Purchase(c echo.Context) error {
	var body purchaseBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	switch body.Tier {
	case domain.TierSilver, domain.TierGold, domain.TierDiamond:
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown tier"})
	}

	receipt, err := h.balances.Purchase(c.Request().Context(), body.Tier)
	if err != nil {
		return h.fail(c, err, "purchase failed")
	}
	return c.JSON(http.StatusOK, receipt)
}

// GetBalanceHistory returns the current balance-history view.
func (h *Handler) GetBalanceHistory(c echo.Context) error {
	if err := h.balances.History.Load(c.Request().Context()); err != nil {
		return h.fail(c, err, "failed to load history")
	}
	return c.JSON(http.StatusOK, historyResponse[domain.BalanceEntry]{
		Mode:    h.balances.History.Mode(),
		Entries: h.balances.History.Entries(),
	})
}

// ToggleBalanceHistory flips between the recent window and the full
// listing and returns the re-fetched view.
func (h *Handler) ToggleBalanceHistory(c echo.Context) error {
	if err := h.balances.History.Toggle(c.Request().Context()); err != nil {
		return h.fail(c, err, "failed to load history")
	}
	return c.JSON(http.StatusOK, historyResponse[domain.BalanceEntry]{
		Mode:    h.balances.History.Mode(),
		Entries: h.balances.History.Entries(),
	})
}
