package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionInvalid is surfaced for a 401 on any authorized call.
	// Every controller propagates it unchanged; the caller discards the
	// session and re-authenticates.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrNotFound is surfaced when a prediction lookup reports that no
	// such job exists. It is the only failure kind derived from a 404.
	ErrNotFound = errors.New("prediction not found")

	// ErrNoToken is reported by the credential store when no token has
	// been persisted.
	ErrNoToken = errors.New("no stored token")
)

// ValidationError reports input rejected locally, before any network
// call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError is the normalized form of any non-2xx response that is
// not a session failure. Message carries the server-supplied detail
// when the body had one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("service error [%d]: %s", e.StatusCode, e.Message)
}

// RemoteMessage returns the server-supplied message from err, or
// fallback when err carries none. Controllers use it to surface server
// detail verbatim with a fixed per-operation fallback.
func RemoteMessage(err error, fallback string) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
