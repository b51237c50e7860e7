// Command refresh-metadata re-reads play counts and thumbnails of every
// catalog game from Roblox. It is intended to be invoked by an external cron
// job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/adapter/postgres/game"
	"github.com/heartmarshall/rotection-backend/internal/adapter/provider/catalog"
	"github.com/heartmarshall/rotection-backend/internal/app"
	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/service/refresh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := refresh.NewService(logger, game.New(pool), catalog.NewClient(cfg.Catalog, nil, logger), cfg.Refresh)

	sum, err := svc.RefreshAll(ctx)
	if err != nil {
		logger.Error("metadata refresh failed",
			slog.String("error", err.Error()),
			slog.Int("updated", sum.Updated),
		)
		os.Exit(1)
	}

	if sum.Failed > 0 {
		os.Exit(1)
	}
}
