//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/volunteer-backend/internal/app"
	authpkg "github.com/heartmarshall/volunteer-backend/internal/auth"
	"github.com/heartmarshall/volunteer-backend/internal/config"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
	notificationsvc "github.com/heartmarshall/volunteer-backend/internal/service/notification"
	"github.com/heartmarshall/volunteer-backend/internal/transport/middleware"
)

const testJWTSecret = "e2e-test-secret-that-is-long-enough-32"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testJWTSecret,
			JWTIssuer:      "volunteer-e2e",
			AccessTokenTTL: time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		RateLimit: config.RateLimitConfig{ScanPerMinute: 100, CleanupInterval: time.Minute},
	}

	dispatcher := notificationsvc.NewDispatcher(logger, notification.New(pool), notificationsvc.DispatcherConfig{
		QueueSize: 64,
		Workers:   1,
	})
	dispatcher.Start(context.Background())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dispatcher.Stop(ctx)
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, dispatcher, limiter))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// actor is a seeded user with a valid bearer token.
type actor struct {
	User  domain.User
	Token string
}

func (ts *testServer) newActor(t *testing.T, role domain.UserRole) actor {
	t.Helper()

	u := testhelper.SeedUser(t, ts.Pool, role)
	token, err := ts.jwt.GenerateAccessToken(u.ID, role)
	require.NoError(t, err)
	return actor{User: u, Token: token}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends a request, asserts the status and decodes the JSON body.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any, wantStatus int) map[string]any {
	t.Helper()

	resp := ts.do(t, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", raw)

	if len(raw) == 0 {
		return nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func userIDString(a actor) string {
	return a.User.ID.String()
}
