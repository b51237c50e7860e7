// Package refresh re-reads play counts and thumbnails of catalog games from
// Roblox.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

type gameRepo interface {
	ListForRefresh(ctx context.Context) ([]domain.Game, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, upd domain.GameMetadataUpdate) error
}

type metadataSource interface {
	FetchMetadata(ctx context.Context, placeID string) (*provider.GameMetadata, error)
	FetchThumbnail(ctx context.Context, id, size string) string
}

// Summary counts the outcome of one refresh run.
type Summary struct {
	Total   int
	Updated int
	Skipped int
	Failed  int
}

// Service refreshes game metadata one game at a time.
type Service struct {
	log    *slog.Logger
	games  gameRepo
	source metadataSource
	cfg    config.RefreshConfig
}

// NewService creates a refresh service.
func NewService(logger *slog.Logger, games gameRepo, source metadataSource, cfg config.RefreshConfig) *Service {
	return &Service{
		log:    logger.With("service", "refresh"),
		games:  games,
		source: source,
		cfg:    cfg,
	}
}

// RefreshAll updates every game that has a Roblox id, waiting cfg.Delay
// between games. A failure on one game is logged and the run continues.
// Cancelling ctx stops the run and returns the partial summary with ctx.Err().
func (s *Service) RefreshAll(ctx context.Context) (Summary, error) {
	games, err := s.games.ListForRefresh(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("refresh.RefreshAll: %w", err)
	}

	sum := Summary{Total: len(games)}
	s.log.InfoContext(ctx, "metadata refresh started", slog.Int("games", len(games)))

	for i, g := range games {
		if i > 0 && s.cfg.Delay > 0 {
			t := time.NewTimer(s.cfg.Delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return sum, ctx.Err()
			case <-t.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		updated, err := s.refreshOne(ctx, g)
		switch {
		case err != nil:
			sum.Failed++
			s.log.WarnContext(ctx, "metadata refresh failed",
				slog.String("game_id", g.ID.String()),
				slog.String("roblox_id", g.RobloxID),
				slog.String("error", err.Error()),
			)
		case updated:
			sum.Updated++
		default:
			sum.Skipped++
		}
	}

	s.log.InfoContext(ctx, "metadata refresh finished",
		slog.Int("total", sum.Total),
		slog.Int("updated", sum.Updated),
		slog.Int("skipped", sum.Skipped),
		slog.Int("failed", sum.Failed),
	)
	return sum, nil
}

func (s *Service) refreshOne(ctx context.Context, g domain.Game) (bool, error) {
	var (
		meta  *provider.GameMetadata
		thumb string
	)

	var eg errgroup.Group
	eg.Go(func() error {
		meta, _ = s.source.FetchMetadata(ctx, g.RobloxID)
		return nil
	})
	eg.Go(func() error {
		thumb = s.source.FetchThumbnail(ctx, g.RobloxID, "")
		return nil
	})
	_ = eg.Wait()

	var upd domain.GameMetadataUpdate
	if thumb != "" {
		upd.ThumbnailURL = &thumb
	}
	if meta != nil {
		plays := strconv.FormatInt(meta.Visits, 10)
		upd.TotalPlays = &plays
	}
	if upd.ThumbnailURL == nil && upd.TotalPlays == nil {
		return false, nil
	}

	if err := s.games.UpdateMetadata(ctx, g.ID, upd); err != nil {
		return false, err
	}

	s.log.DebugContext(ctx, "metadata refreshed",
		slog.String("game_id", g.ID.String()),
		slog.Bool("plays", upd.TotalPlays != nil),
	)
	return true, nil
}
