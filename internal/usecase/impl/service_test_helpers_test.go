package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"keepposted/config"
	"keepposted/internal/usecase/session"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func newTestSession(t *testing.T, uid string) (*session.Store, *session.Session) {
	t.Helper()

	store := session.NewStore(newTestConfig())

	return store, store.Create(uid, uid+"@example.com")
}

// waitBackground fails the test if background work does not finish promptly.
func waitBackground(t *testing.T, bg *Background) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, bg.Wait(ctx))
}
