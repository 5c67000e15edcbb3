package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nycast/client/balance"
	"github.com/nycast/client/config"
	"github.com/nycast/client/domain"
	"github.com/nycast/client/prediction"
	"github.com/nycast/client/session"
	"github.com/nycast/client/store"
	"github.com/nycast/client/transport"
)

// core bundles the wired-up controllers a command works with. Each CLI
// invocation is its own process; the credential store is what carries
// the session from one invocation to the next.
type core struct {
	cfg         *config.Config
	creds       store.Store
	sessions    *session.Manager
	balances    *balance.Controller
	predictions *prediction.Controller
}

func newCore(cmd *cobra.Command) (*core, error) {
	cfg := config.Load()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	creds, err := store.NewSQLiteStore(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	gateway := transport.NewClient(cfg.ServiceURL, cfg.RequestTimeout)
	sessions := session.NewManager(gateway, creds)

	return &core{
		cfg:         cfg,
		creds:       creds,
		sessions:    sessions,
		balances:    balance.NewController(gateway, sessions),
		predictions: prediction.NewController(gateway),
	}, nil
}

func (c *core) close() {
	_ = c.creds.Close()
}

// renderErr turns a core error into the message the operator sees. A
// session failure discards the stored session and points at login.
func (c *core) renderErr(err error, fallback string) error {
	if errors.Is(err, domain.ErrSessionInvalid) {
		c.sessions.Clear()
		return errors.New("session invalid, run `nycast login` to re-authenticate")
	}
	if errors.Is(err, domain.ErrNotFound) {
		return errors.New("prediction not found")
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return errors.New(domain.RemoteMessage(err, fallback))
}

// parseAmount converts operator input to a positive decimal, rejecting
// it locally before any network call.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &domain.ValidationError{Field: "amount", Reason: "must be a number"}
	}
	return v, nil
}

func parseDistrict(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &domain.ValidationError{Field: "district", Reason: "must be an integer"}
	}
	return v, nil
}

func parseJobID(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: "id", Reason: "must be an integer"}
	}
	return v, nil
}

func parseTier(s string) (domain.Tier, error) {
	switch domain.Tier(s) {
	case domain.TierSilver, domain.TierGold, domain.TierDiamond:
		return domain.Tier(s), nil
	default:
		return "", &domain.ValidationError{Field: "tier", Reason: "must be silver, gold or diamond"}
	}
}
