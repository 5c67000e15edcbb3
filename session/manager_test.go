package session_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nycast/client/domain"
	"github.com/nycast/client/session"
	"github.com/nycast/client/store"
	"github.com/nycast/client/tests/helpers"
	"github.com/nycast/client/transport"
)

func TestLoginEstablishesSession(t *testing.T) {
	var authHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"T","token_type":"bearer"}`)
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"username":"u","balance":0,"status":"bronze"}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	creds := helpers.NewTestCredStore(t)
	gateway := transport.NewClient(server.URL, time.Second)
	m := session.NewManager(gateway, creds)

	if err := m.Login(context.Background(), "u", "p"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !m.Authenticated() {
		t.Fatalf("expected authenticated session after login")
	}

	// The token must be attached to every subsequent authorized call.
	if _, err := m.CurrentUser(context.Background()); err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if authHeader != "Bearer T" {
		t.Fatalf("Authorization = %q, want %q", authHeader, "Bearer T")
	}

	// And persisted under the well-known key.
	saved, err := creds.Get(store.TokenKey)
	if err != nil {
		t.Fatalf("token not persisted: %v", err)
	}
	if saved != "T" {
		t.Fatalf("persisted token = %q, want %q", saved, "T")
	}
}

func TestNewManagerRestoresPersistedToken(t *testing.T) {
	creds := helpers.NewTestCredStore(t)
	if err := creds.Put(store.TokenKey, "persisted"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	gateway := transport.NewClient("http://localhost:0", time.Second)
	m := session.NewManager(gateway, creds)

	if !m.Authenticated() {
		t.Fatalf("expected restored session")
	}
	if got := gateway.Token(); got != "persisted" {
		t.Fatalf("gateway token = %q, want %q", got, "persisted")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"wrong username or password"}`)
	}))
	defer server.Close()

	creds := helpers.NewTestCredStore(t)
	gateway := transport.NewClient(server.URL, time.Second)
	m := session.NewManager(gateway, creds)

	err := m.Login(context.Background(), "u", "wrong")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, domain.ErrSessionInvalid) {
		t.Fatalf("credential failure must not read as an invalid session")
	}
	if got := domain.RemoteMessage(err, "login failed"); got != "wrong username or password" {
		t.Fatalf("RemoteMessage = %q", got)
	}
	if m.Authenticated() {
		t.Fatalf("no session should be established on failure")
	}
	if _, err := creds.Get(store.TokenKey); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("no token should be persisted on failure, got %v", err)
	}
}

func TestRegisterEstablishesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/register" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"access_token":"R"}`)
	}))
	defer server.Close()

	gateway := transport.NewClient(server.URL, time.Second)
	m := session.NewManager(gateway, helpers.NewTestCredStore(t))

	if err := m.Register(context.Background(), "new", "pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got := gateway.Token(); got != "R" {
		t.Fatalf("gateway token = %q, want %q", got, "R")
	}
}

func TestCurrentUserSessionInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"Could not validate credentials"}`)
	}))
	defer server.Close()

	gateway := transport.NewClient(server.URL, time.Second)
	gateway.SetToken("expired")
	m := session.NewManager(gateway, nil)

	_, err := m.CurrentUser(context.Background())
	if !errors.Is(err, domain.ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	creds := helpers.NewTestCredStore(t)
	if err := creds.Put(store.TokenKey, "T"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	gateway := transport.NewClient("http://localhost:0", time.Second)
	m := session.NewManager(gateway, creds)

	m.Clear()
	m.Clear()

	if m.Authenticated() {
		t.Fatalf("expected cleared session")
	}
	if _, err := creds.Get(store.TokenKey); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected deleted token, got %v", err)
	}
}
