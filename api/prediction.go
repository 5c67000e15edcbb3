package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nycast/client/domain"
)

type submitBody struct {
	District int `json:"district"`
}

// SubmitFree queues an unmetered forecast job.
func (h *Handler) SubmitFree(c echo.Context) error {
	var body submitBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	id, err := h.predictions.SubmitFree(c.Request().Context(), body.District)
	if err != nil {
		return h.fail(c, err, "submission failed")
	}
	return c.JSON(http.StatusOK, map[string]int64{"id": id})
}

// SubmitPaid queues a billed forecast job.
func (h *Handler) SubmitPaid(c echo.Context) error {
	var body submitBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	id, err := h.predictions.SubmitPaid(c.Request().Context(), body.District)
	if err != nil {
		return h.fail(c, err, "submission failed")
	}
	return c.JSON(http.StatusOK, map[string]int64{"id": id})
}

// GetPrediction looks up a job by id. A job the service does not know
// about renders as 404, distinct from any other failure.
func (h *Handler) GetPrediction(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid prediction id"})
	}

	job, err := h.predictions.FetchByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to fetch prediction")
	}
	return c.JSON(http.StatusOK, job)
}

// GetPredictionHistory returns the current prediction-history view.
func (h *Handler) GetPredictionHistory(c echo.Context) error {
	if err := h.predictions.History.Load(c.Request().Context()); err != nil {
		return h.fail(c, err, "failed to load history")
	}
	return c.JSON(http.StatusOK, historyResponse[domain.PredictionJob]{
		Mode:    h.predictions.History.Mode(),
		Entries: h.predictions.History.Entries(),
	})
}

// TogglePredictionHistory flips the prediction history mode and
// returns the re-fetched view.
func (h *Handler) TogglePredictionHistory(c echo.Context) error {
	if err := h.predictions.History.Toggle(c.Request().Context()); err != nil {
		return h.fail(c, err, "failed to load history")
	}
	return c.JSON(http.StatusOK, historyResponse[domain.PredictionJob]{
		Mode:    h.predictions.History.Mode(),
		Entries: h.predictions.History.Entries(),
	})
}
