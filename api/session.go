package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nycast/client/domain"
)

// Login establishes a session from a username/password pair.
func (h *Handler) Login(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if err := h.sessions.Login(c.Request().Context(), creds.Username, creds.Password); err != nil {
		return h.fail(c, err, "login failed")
	}
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": true})
}

// Register creates an account and establishes a session.
func (h *Handler) Register(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	if err := h.sessions.Register(c.Request().Context(), creds.Username, creds.Password); err != nil {
		return h.fail(c, err, "registration failed")
	}
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": true})
}

// Logout discards the session. Idempotent.
func (h *Handler) Logout(c echo.Context) error {
	h.sessions.Clear()
	return c.NoContent(http.StatusNoContent)
}

// GetUser returns the authenticated user, seeding the balance state as
// a side effect.
func (h *Handler) GetUser(c echo.Context) error {
	user, err := h.balances.Load(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "failed to fetch user")
	}
	return c.JSON(http.StatusOK, user)
}
