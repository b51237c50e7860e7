// Package catalog serves the read side of the game catalog: listings, game
// pages, reviews and the caller's own ratings, votes and submissions.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

type gameRepo interface {
	List(ctx context.Context, f domain.GameFilter) ([]domain.GameWithStats, error)
	Featured(ctx context.Context, minScore, limit int) ([]domain.GameWithStats, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error)
	GetByRobloxID(ctx context.Context, robloxID string) (*domain.GameWithStats, error)
	Genres(ctx context.Context) ([]string, error)
}

type ratingRepo interface {
	GetByAccount(ctx context.Context, accountID, gameID uuid.UUID) (*domain.Rating, error)
}

type reviewRepo interface {
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]domain.Review, error)
	GetVote(ctx context.Context, accountID, reviewID uuid.UUID) (*domain.ReviewVote, error)
}

type submissionRepo interface {
	ListBySubmitter(ctx context.Context, submitterID uuid.UUID) ([]domain.Submission, error)
}

type gameLookup interface {
	Identify(rawURL string) (string, bool)
	Lookup(ctx context.Context, rawURL string) provider.GameLookup
}

// Featured listing parameters.
const (
	FeaturedMinSafetyScore = 80
	FeaturedLimit          = 6
)

// Service implements catalog read queries. Only approved games are visible.
type Service struct {
	log         *slog.Logger
	games       gameRepo
	ratings     ratingRepo
	reviews     reviewRepo
	submissions submissionRepo
	lookup      gameLookup
}

// NewService creates a catalog service.
func NewService(
	logger *slog.Logger,
	games gameRepo,
	ratings ratingRepo,
	reviews reviewRepo,
	submissions submissionRepo,
	lookup gameLookup,
) *Service {
	return &Service{
		log:         logger.With("service", "catalog"),
		games:       games,
		ratings:     ratings,
		reviews:     reviews,
		submissions: submissions,
		lookup:      lookup,
	}
}
