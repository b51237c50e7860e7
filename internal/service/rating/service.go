// Package rating records per-account game ratings, their optional reviews,
// and helpfulness votes on reviews.
package rating

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

type gameRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error)
}

type ratingRepo interface {
	Upsert(ctx context.Context, in *domain.Rating) (*domain.Rating, error)
}

type reviewRepo interface {
	Create(ctx context.Context, in *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Vote(ctx context.Context, v domain.ReviewVote) (*domain.ReviewVote, error)
}

type ratingCounter interface {
	RatingSubmitted()
}

// Service implements rating, review and vote writes.
type Service struct {
	log     *slog.Logger
	games   gameRepo
	ratings ratingRepo
	reviews reviewRepo
	counter ratingCounter
}

// NewService creates a rating service. counter may be nil.
func NewService(
	logger *slog.Logger,
	games gameRepo,
	ratings ratingRepo,
	reviews reviewRepo,
	counter ratingCounter,
) *Service {
	return &Service{
		log:     logger.With("service", "rating"),
		games:   games,
		ratings: ratings,
		reviews: reviews,
		counter: counter,
	}
}
