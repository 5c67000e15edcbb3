// Package prediction implements submission and lookup of asynchronous
// forecasting jobs. Submission is fire-and-forget: the service assigns
// an id and the only way to observe job state afterwards is a fresh
// fetch by that id.
package prediction

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/nycast/client/domain"
	"github.com/nycast/client/history"
	"github.com/nycast/client/transport"
)

type submitRequest struct {
	District int `json:"district"`
}

type submitResponse struct {
	ID int64 `json:"id"`
}

// Controller owns job submission, point lookup and the prediction
// history view.
type Controller struct {
	gateway *transport.Client

	// History lists previously submitted jobs; refreshed after every
	// successful submission so new jobs appear in the next read.
	History *history.Controller[domain.PredictionJob]
}

// NewController creates a prediction controller.
func NewController(gateway *transport.Client) *Controller {
	return &Controller{
		gateway: gateway,
		History: history.NewController[domain.PredictionJob](gateway, "prediction/history"),
	}
}

// SubmitFree queues an unmetered forecast for district and returns the
// server-assigned job id. It does not wait for completion.
func (c *Controller) SubmitFree(ctx context.Context, district int) (int64, error) {
	return c.submit(ctx, "prediction/nyc_free", district)
}

// SubmitPaid queues a billed forecast for district. Same contract as
// SubmitFree, distinct endpoint; failures here are ordinary submission
// failures, not a separate error kind.
func (c *Controller) SubmitPaid(ctx context.Context, district int) (int64, error) {
	return c.submit(ctx, "prediction/nyc_cost", district)
}

func (c *Controller) submit(ctx context.Context, path string, district int) (int64, error) {
	var resp submitResponse
	if err := c.gateway.PostJSON(ctx, path, submitRequest{District: district}, &resp); err != nil {
		return 0, err
	}

	if err := c.History.Load(ctx); err != nil {
		log.Printf("WARN: prediction history refresh failed: %v", err)
	}
	return resp.ID, nil
}

// FetchByID looks up a previously submitted job. A job the service
// does not know about yields domain.ErrNotFound; any other failure is
// a generic fetch failure. The two are never conflated.
func (c *Controller) FetchByID(ctx context.Context, id int64) (*domain.PredictionJob, error) {
	var job domain.PredictionJob
	err := c.gateway.GetJSON(ctx, "prediction/"+strconv.FormatInt(id, 10), &job)
	if err != nil {
		if errors.Is(err, domain.ErrSessionInvalid) {
			return nil, err
		}
		var re *domain.RemoteError
		if errors.As(err, &re) && re.StatusCode == 404 {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch prediction: %w", err)
	}
	return &job, nil
}
