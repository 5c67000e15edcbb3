// Package store defines the credential storage interface and its
// SQLite implementation. The client persists exactly one thing between
// runs: the session token, under a single well-known key.
package store

// TokenKey is the well-known key the access token lives under.
const TokenKey = "access_token"

// Store defines the interface for credential persistence.
type Store interface {
	// Put saves value under key, replacing any previous value.
	Put(key, value string) error
	// Get returns the value under key, or domain.ErrNoToken when the
	// key has never been written or was deleted.
	Get(key string) (string, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Lifecycle
	Close() error
}
