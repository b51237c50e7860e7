package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/rotection-backend/internal/adapter/notify"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/rotection-backend/internal/adapter/postgres/account"
	auditrepo "github.com/heartmarshall/rotection-backend/internal/adapter/postgres/audit"
	gamerepo "github.com/heartmarshall/rotection-backend/internal/adapter/postgres/game"
	ratingrepo "github.com/heartmarshall/rotection-backend/internal/adapter/postgres/rating"
	reportrepo "github.com/heartmarshall/rotection-backend/internal/adapter/postgres/report"
	reviewrepo "github.com/heartmarshall/rotection-backend/internal/adapter/postgres/review"
	submissionrepo "github.com/heartmarshall/rotection-backend/internal/adapter/postgres/submission"
	tokenrepo "github.com/heartmarshall/rotection-backend/internal/adapter/postgres/token"
	catalogclient "github.com/heartmarshall/rotection-backend/internal/adapter/provider/catalog"
	"github.com/heartmarshall/rotection-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/rotection-backend/internal/adapter/provider/roblox"
	"github.com/heartmarshall/rotection-backend/internal/adapter/redis/linkstore"
	"github.com/heartmarshall/rotection-backend/internal/auth"
	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/metrics"
	authsvc "github.com/heartmarshall/rotection-backend/internal/service/auth"
	"github.com/heartmarshall/rotection-backend/internal/service/catalog"
	"github.com/heartmarshall/rotection-backend/internal/service/link"
	"github.com/heartmarshall/rotection-backend/internal/service/profile"
	"github.com/heartmarshall/rotection-backend/internal/service/rating"
	"github.com/heartmarshall/rotection-backend/internal/service/submission"
	"github.com/heartmarshall/rotection-backend/internal/transport/middleware"
	"github.com/heartmarshall/rotection-backend/internal/transport/rest"
)

// Run is the API server entry point. It loads configuration, connects to
// PostgreSQL and Redis, applies migrations, wires the services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	rdb, err := linkstore.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer rdb.Close() //nolint:errcheck

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Repositories.
	accounts := accountrepo.New(pool)
	tokens := tokenrepo.New(pool)
	games := gamerepo.New(pool)
	ratings := ratingrepo.New(pool)
	reviews := reviewrepo.New(pool)
	reports := reportrepo.New(pool)
	submissions := submissionrepo.New(pool)
	auditLog := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// External clients.
	catalogClient := catalogclient.NewClient(cfg.Catalog, m, logger)
	robloxClient := roblox.NewClient(cfg.Roblox, logger)
	googleVerifier := google.NewVerifier(cfg.Auth, logger)
	webhook := notify.NewWebhook(cfg.Notify, logger)
	store := linkstore.New(rdb, cfg.Roblox.StateTTL, cfg.Link.ChallengeTTL)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	authService := authsvc.NewService(logger, accounts, tokens, tx, googleVerifier, jwt, cfg.Auth)
	profileService := profile.NewService(logger, accounts)
	linkService := link.NewService(logger, robloxClient, robloxClient, store, accounts, m, cfg.Link)
	catalogService := catalog.NewService(logger, games, ratings, reviews, submissions, catalogClient)
	ratingService := rating.NewService(logger, games, ratings, reviews, m)
	submissionService := submission.NewService(logger, games, submissions, reports, accounts, catalogClient, webhook, m, auditLog, tx)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	mux := newMux(handlers{
		health:     rest.NewHealthHandler(BuildVersion(), rest.Check("database", pool), rest.Check("redis", store)),
		auth:       rest.NewAuthHandler(authService, logger),
		account:    rest.NewAccountHandler(profileService, linkService, logger),
		game:       rest.NewGameHandler(catalogService, ratingService, submissionService, logger),
		submission: rest.NewSubmissionHandler(submissionService, catalogService, logger),
		admin:      rest.NewAdminHandler(submissionService, logger),
		metrics:    m.Handler(),
	}, limits{
		auth:   limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
		writes: limiter.Limit("writes", cfg.RateLimit.WritesPerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Metrics(m),
	)(mux)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx ends, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
