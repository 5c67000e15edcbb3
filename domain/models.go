// Package domain defines the core domain models for the forecast client.
package domain

import "encoding/json"

// TokenResponse represents the response from login/register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// User represents the authenticated user as reported by the service.
type User struct {
	Username      string  `json:"username"`
	Balance       float64 `json:"balance"`
	Status        string  `json:"status"`
	StatusDateEnd string  `json:"status_date_end,omitempty"`
}

// BalanceEntry is a single balance-history record. Entries are
// immutable snapshots; the client only ever replaces the whole list.
type BalanceEntry struct {
	Timestamp   string  `json:"timestamp"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// PredictionJob represents a server-tracked forecasting job. Status and
// Result are only trustworthy after an explicit fetch by id; submission
// alone yields nothing but the id.
type PredictionJob struct {
	ID        int64           `json:"id"`
	Model     string          `json:"model,omitempty"`
	City      string          `json:"city,omitempty"`
	District  int             `json:"district"`
	Hour      int             `json:"hour,omitempty"`
	Cost      float64         `json:"cost,omitempty"`
	Status    JobStatus       `json:"status"`
	Result    json.RawMessage `json:"result,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// Receipt is the outcome of a status purchase. Fields are rendered
// verbatim by presentation; RemainingBalance is the server-confirmed
// balance after the purchase.
type Receipt struct {
	Status           string  `json:"status"`
	StatusDateEnd    string  `json:"status_date_end"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// Credentials carries a username/password pair for login or register.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
