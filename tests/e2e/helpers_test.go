//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/rotection-backend/internal/adapter/notify"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/game"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/rating"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/review"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/submission"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/token"
	catalogclient "github.com/heartmarshall/rotection-backend/internal/adapter/provider/catalog"
	authpkg "github.com/heartmarshall/rotection-backend/internal/auth"
	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	authsvc "github.com/heartmarshall/rotection-backend/internal/service/auth"
	catalogsvc "github.com/heartmarshall/rotection-backend/internal/service/catalog"
	ratingsvc "github.com/heartmarshall/rotection-backend/internal/service/rating"
	submissionsvc "github.com/heartmarshall/rotection-backend/internal/service/submission"
	"github.com/heartmarshall/rotection-backend/internal/transport/middleware"
	"github.com/heartmarshall/rotection-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
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

type noOAuth struct{}

func (noOAuth) VerifyCode(_ context.Context, _, _ string) (*authpkg.OAuthIdentity, error) {
	return nil, fmt.Errorf("oauth is not available in e2e tests")
}

// setupTestServer bootstraps the REST stack backed by a real PostgreSQL
// container. Roblox lookups go to a local relay that always answers 404, so
// submissions are stored without metadata.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	relay := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(relay.Close)

	accounts := account.New(pool)
	games := game.New(pool)
	ratings := rating.New(pool)
	reviews := review.New(pool)
	reports := report.New(pool)
	submissions := submission.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:       "test-secret-at-least-32-chars-long!!",
		JWTIssuer:       "test-issuer",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 720 * time.Hour,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	lookup := catalogclient.NewClient(config.CatalogConfig{
		ProxyPrefix:   relay.URL + "/raw?url=",
		Timeout:       2 * time.Second,
		ThumbnailSize: "768x432",
	}, nil, logger)

	authService := authsvc.NewService(logger, accounts, token.New(pool), txm, noOAuth{}, jwtMgr, authCfg)
	catalogService := catalogsvc.NewService(logger, games, ratings, reviews, submissions, lookup)
	ratingService := ratingsvc.NewService(logger, games, ratings, reviews, nil)
	submissionService := submissionsvc.NewService(logger, games, submissions, reports, accounts,
		lookup, notify.NewWebhook(config.NotifyConfig{}, logger), nil, audit.New(pool), txm)

	health := rest.NewHealthHandler("test-version", rest.Check("database", pool))
	gameHandler := rest.NewGameHandler(catalogService, ratingService, submissionService, logger)
	submissionHandler := rest.NewSubmissionHandler(submissionService, catalogService, logger)
	adminHandler := rest.NewAdminHandler(submissionService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /games", gameHandler.List)
	mux.HandleFunc("GET /games/{id}", gameHandler.Get)
	mux.HandleFunc("GET /games/{id}/reviews", gameHandler.Reviews)
	mux.HandleFunc("GET /games/{id}/my-rating", gameHandler.MyRating)
	mux.HandleFunc("POST /games/{id}/ratings", gameHandler.SubmitRating)
	mux.HandleFunc("POST /games/{id}/reports", gameHandler.SubmitReport)
	mux.HandleFunc("POST /reviews/{id}/votes", gameHandler.Vote)
	mux.HandleFunc("POST /submissions", submissionHandler.Submit)
	mux.HandleFunc("GET /me/submissions", submissionHandler.Mine)
	mux.HandleFunc("GET /admin/submissions", adminHandler.Submissions)
	mux.HandleFunc("POST /admin/submissions/{id}/approve", adminHandler.Approve)
	mux.HandleFunc("POST /admin/submissions/{id}/reject", adminHandler.Reject)
	mux.HandleFunc("GET /admin/reports", adminHandler.Reports)
	mux.HandleFunc("POST /admin/reports/{id}/resolve", adminHandler.ResolveReport)
	mux.HandleFunc("GET /admin/audit", adminHandler.Audit)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// do sends a JSON request and returns the status and the raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

// doJSON is like do but decodes the body into T.
func doJSON[T any](t *testing.T, ts *testServer, method, path string, body any, token string) (int, T) {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	var out T
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}

// createUser inserts an account and returns a valid access token for it.
func createUser(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()
	acc := testhelper.SeedAccount(t, ts.Pool)
	return ts.token(t, acc.ID, domain.RoleUser), acc.ID
}

// createAdmin inserts an admin account and returns a valid access token for it.
func createAdmin(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()
	acc := testhelper.SeedAdmin(t, ts.Pool)
	return ts.token(t, acc.ID, domain.RoleAdmin), acc.ID
}

func (ts *testServer) token(t *testing.T, id uuid.UUID, role domain.Role) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(id, role)
	require.NoError(t, err)
	return tok
}
