// Package api provides the local operator console: an HTTP surface a
// browser or tool talks to, which holds the session and forwards every
// operation to the core controllers.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nycast/client/balance"
	"github.com/nycast/client/prediction"
	"github.com/nycast/client/session"
)

// Handler handles console HTTP requests.
type Handler struct {
	sessions    *session.Manager
	balances    *balance.Controller
	predictions *prediction.Controller
}

// NewHandler creates a new console handler.
func NewHandler(sessions *session.Manager, balances *balance.Controller, predictions *prediction.Controller) *Handler {
	return &Handler{
		sessions:    sessions,
		balances:    balances,
		predictions: predictions,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Session
	e.POST("/session/login", h.Login)
	e.POST("/session/register", h.Register)
	e.DELETE("/session", h.Logout)
	e.GET("/session/user", h.GetUser)

	// Balance
	e.GET("/balance", h.GetBalance)
	e.POST("/balance/top_up", h.TopUp)
	e.POST("/balance/purchase", h.Purchase)
	e.GET("/balance/history", h.GetBalanceHistory)
	e.POST("/balance/history/toggle", h.ToggleBalanceHistory)

	// Predictions
	e.POST("/predictions/free", h.SubmitFree)
	e.POST("/predictions/paid", h.SubmitPaid)
	e.GET("/predictions/:id", h.GetPrediction)
	e.GET("/predictions/history", h.GetPredictionHistory)
	e.POST("/predictions/history/toggle", h.TogglePredictionHistory)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
