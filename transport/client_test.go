package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nycast/client/domain"
)

func TestClientAttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer T" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}
		if r.URL.Path != "/api/v1/auth/me" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"username":"u","balance":10,"status":"bronze"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.SetToken("T")

	var user domain.User
	if err := client.GetJSON(context.Background(), "auth/me", &user); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if user.Username != "u" || user.Balance != 10 {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestClientNoHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Fatalf("unexpected Authorization header on unauthenticated call")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"T"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	var resp domain.TokenResponse
	if err := client.PostJSON(context.Background(), "auth/login", domain.Credentials{Username: "u", Password: "p"}, &resp); err != nil {
		t.Fatalf("PostJSON failed: %v", err)
	}
	if resp.AccessToken != "T" {
		t.Fatalf("unexpected token: %q", resp.AccessToken)
	}
}

func TestClientClearTokenStripsHeader(t *testing.T) {
	var sawHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.SetToken("T")
	client.ClearToken()

	if err := client.GetJSON(context.Background(), "auth/me", nil); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if sawHeader {
		t.Fatalf("Authorization header sent after ClearToken")
	}
}

func TestClientUnauthorizedWithToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"Could not validate credentials"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.SetToken("expired")

	err := client.GetJSON(context.Background(), "auth/me", nil)
	if !errors.Is(err, domain.ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}

func TestClientUnauthorizedWithoutTokenIsCredentialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"bad credentials"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.PostJSON(context.Background(), "auth/login", domain.Credentials{Username: "u", Password: "x"}, nil)

	if errors.Is(err, domain.ErrSessionInvalid) {
		t.Fatalf("login rejection must not read as an invalid session")
	}
	var re *domain.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.StatusCode != http.StatusUnauthorized || re.Message != "bad credentials" {
		t.Fatalf("unexpected remote error: %+v", re)
	}
}

func TestClientDetailPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"detail":"insufficient funds"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.SetToken("T")

	err := client.PostJSON(context.Background(), "balance/purchase", map[string]string{"status": "gold"}, nil)
	var re *domain.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if re.Message != "insufficient funds" {
		t.Fatalf("expected detail passthrough, got %q", re.Message)
	}
	if got := domain.RemoteMessage(err, "fallback"); got != "insufficient funds" {
		t.Fatalf("RemoteMessage = %q", got)
	}
}

func TestClientFallbackOnUndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream exploded")
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.GetJSON(context.Background(), "auth/me", nil)

	if got := domain.RemoteMessage(err, "fetch failed"); got != "fetch failed" {
		t.Fatalf("RemoteMessage = %q, want fallback", got)
	}
}

func TestClientSetsRequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected Content-Type: %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("missing X-Request-ID")
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if err := client.PostJSON(context.Background(), "balance/history", nil, nil); err != nil {
		t.Fatalf("PostJSON failed: %v", err)
	}
}
