// Package session owns the credential token lifecycle: establishment
// via login/register, attachment to the gateway, persistence between
// runs and invalidation.
package session

import (
	"context"
	"fmt"
	"log"

	"github.com/nycast/client/domain"
	"github.com/nycast/client/store"
	"github.com/nycast/client/transport"
)

// Manager is the single owner of the session. Only Login/Register and
// Clear write the token; everything else reads it through the gateway.
type Manager struct {
	gateway *transport.Client
	creds   store.Store
}

// NewManager creates a session manager. A token persisted by a
// previous run is restored into the gateway so the session survives
// process restarts.
func NewManager(gateway *transport.Client, creds store.Store) *Manager {
	m := &Manager{gateway: gateway, creds: creds}

	if creds != nil {
		if token, err := creds.Get(store.TokenKey); err == nil {
			gateway.SetToken(token)
		}
	}
	return m
}

// Login authenticates with the service and establishes the session.
// Invalid credentials surface as the service's own error detail.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	return m.establish(ctx, "auth/login", username, password)
}

// Register creates an account and establishes the session; the service
// issues a token on successful registration just like login does.
func (m *Manager) Register(ctx context.Context, username, password string) error {
	return m.establish(ctx, "auth/register", username, password)
}

func (m *Manager) establish(ctx context.Context, path, username, password string) error {
	var resp domain.TokenResponse
	err := m.gateway.PostJSON(ctx, path, domain.Credentials{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return err
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("service returned no access token")
	}

	m.gateway.SetToken(resp.AccessToken)

	if m.creds != nil {
		if err := m.creds.Put(store.TokenKey, resp.AccessToken); err != nil {
			// The in-memory session is established either way; only
			// persistence across restarts is lost.
			log.Printf("WARN: failed to persist token: %v", err)
		}
	}
	return nil
}

// CurrentUser fetches the authenticated user. A domain.ErrSessionInvalid
// result is the codified trigger for forcing re-authentication.
func (m *Manager) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := m.gateway.GetJSON(ctx, "auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Clear removes the stored token and strips the gateway's default
// authorization. Idempotent.
func (m *Manager) Clear() {
	m.gateway.ClearToken()

	if m.creds != nil {
		if err := m.creds.Delete(store.TokenKey); err != nil {
			log.Printf("WARN: failed to delete persisted token: %v", err)
		}
	}
}

// Authenticated reports whether a token is currently installed. It says
// nothing about whether the service still accepts it.
func (m *Manager) Authenticated() bool {
	return m.gateway.Token() != ""
}
