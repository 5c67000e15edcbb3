// Package transport provides the HTTP gateway to the forecast service.
// Every remote call the client makes goes through one Client, which
// owns the base address, the default content type and the token slot.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nycast/client/domain"
)

// apiPrefix is the service's versioned base path.
const apiPrefix = "/api/v1"

// Client is the HTTP gateway. The token slot is written only on
// establish/clear and read on every outgoing request, so it sits
// behind a read-mostly lock.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a gateway for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetToken installs token as the default authorization for all
// subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken strips the default authorization. Idempotent.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// Token returns the currently installed token, empty when absent.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// PostJSON sends body as JSON to path and decodes the 2xx response
// into out. A nil body sends an empty JSON object.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	if body == nil {
		body = struct{}{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, payload, out)
}

// GetJSON issues a GET to path and decodes the 2xx response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	url := c.baseURL + apiPrefix + "/" + strings.TrimPrefix(path, "/")

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	token := c.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeFailure(resp.StatusCode, respBody, token != "")
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// errorBody is the service's failure shape.
type errorBody struct {
	Detail string `json:"detail"`
}

// normalizeFailure maps a non-2xx response to the error taxonomy in one
// step at the gateway boundary. A 401 on a request that carried a token
// means the session is no longer valid; a 401 on an unauthenticated
// call (bad login credentials) is an ordinary remote failure.
func normalizeFailure(status int, body []byte, hadToken bool) error {
	if status == http.StatusUnauthorized && hadToken {
		return domain.ErrSessionInvalid
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		eb.Detail = ""
	}
	return &domain.RemoteError{
		StatusCode: status,
		Message:    eb.Detail,
	}
}
