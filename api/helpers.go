package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nycast/client/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// fail renders err for the console caller. A session failure clears the
// local session so the next request starts from the login entry point;
// remote failures surface the server's own message when it sent one,
// else the per-operation fallback.
func (h *Handler) fail(c echo.Context, err error, fallback string) error {
	if errors.Is(err, domain.ErrSessionInvalid) {
		h.sessions.Clear()
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "session invalid"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "prediction not found"})
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Error()})
	}

	var re *domain.RemoteError
	if errors.As(err, &re) {
		return c.JSON(re.StatusCode, errorResponse{Error: domain.RemoteMessage(err, fallback)})
	}

	return c.JSON(http.StatusBadGateway, errorResponse{Error: fallback})
}
