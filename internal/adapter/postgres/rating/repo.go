// Package rating implements the four-axis Rating repository using PostgreSQL.
package rating

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const table = "game_ratings"

var columns = []string{
	"id", "game_id", "user_id", "honesty", "safety", "fairness", "age_appropriate", "created_at", "updated_at",
}

// Repo provides rating persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new rating repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID `db:"id"`
	GameID         uuid.UUID `db:"game_id"`
	UserID         uuid.UUID `db:"user_id"`
	Honesty        int       `db:"honesty"`
	Safety         int       `db:"safety"`
	Fairness       int       `db:"fairness"`
	AgeAppropriate int       `db:"age_appropriate"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Rating {
	return &domain.Rating{
		ID:             r.ID,
		GameID:         r.GameID,
		AccountID:      r.UserID,
		Honesty:        r.Honesty,
		Safety:         r.Safety,
		Fairness:       r.Fairness,
		AgeAppropriate: r.AgeAppropriate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Upsert stores the account's rating for a game. A second rating from the
// same account overwrites the scores of the first and keeps its id.
func (r *Repo) Upsert(ctx context.Context, in *domain.Rating) (*domain.Rating, error) {
	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	stmt := postgres.Builder().
		Insert(table).
		Columns("id", "game_id", "user_id", "honesty", "safety", "fairness", "age_appropriate").
		Values(id, in.GameID, in.AccountID, in.Honesty, in.Safety, in.Fairness, in.AgeAppropriate).
		Suffix(`ON CONFLICT (game_id, user_id) DO UPDATE SET
			honesty = EXCLUDED.honesty,
			safety = EXCLUDED.safety,
			fairness = EXCLUDED.fairness,
			age_appropriate = EXCLUDED.age_appropriate,
			updated_at = now()
		RETURNING ` + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "rating", in.GameID)
	}
	return out.toDomain(), nil
}

// GetByAccount returns the account's rating for a game.
func (r *Repo) GetByAccount(ctx context.Context, accountID, gameID uuid.UUID) (*domain.Rating, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"game_id": gameID, "user_id": accountID})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "rating", gameID)
	}
	return out.toDomain(), nil
}
