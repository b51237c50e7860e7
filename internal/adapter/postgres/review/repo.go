// Package review implements review and helpfulness-vote persistence using PostgreSQL.
package review

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const (
	reviewsTable = "game_reviews"
	reviewsView  = "reviews_with_users"
	votesTable   = "review_helpfulness"
)

var reviewColumns = []string{
	"id", "game_id", "user_id", "rating_id", "content", "helpful_count", "unhelpful_count", "created_at", "updated_at",
}

var voteColumns = []string{"review_id", "user_id", "is_helpful", "created_at"}

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type reviewRow struct {
	ID             uuid.UUID `db:"id"`
	GameID         uuid.UUID `db:"game_id"`
	UserID         uuid.UUID `db:"user_id"`
	RatingID       uuid.UUID `db:"rating_id"`
	Content        string    `db:"content"`
	HelpfulCount   int       `db:"helpful_count"`
	UnhelpfulCount int       `db:"unhelpful_count"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type authoredRow struct {
	reviewRow
	AuthorUsername *string  `db:"author_username"`
	OverallRating  *float64 `db:"overall_rating"`
}

type voteRow struct {
	ReviewID  uuid.UUID `db:"review_id"`
	UserID    uuid.UUID `db:"user_id"`
	IsHelpful bool      `db:"is_helpful"`
	CreatedAt time.Time `db:"created_at"`
}

func (r reviewRow) toDomain() domain.Review {
	return domain.Review{
		ID:             r.ID,
		GameID:         r.GameID,
		AccountID:      r.UserID,
		RatingID:       r.RatingID,
		Content:        r.Content,
		HelpfulCount:   r.HelpfulCount,
		UnhelpfulCount: r.UnhelpfulCount,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (r voteRow) toDomain() *domain.ReviewVote {
	return &domain.ReviewVote{
		ReviewID:  r.ReviewID,
		AccountID: r.UserID,
		Helpful:   r.IsHelpful,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts a review attached to an existing rating.
func (r *Repo) Create(ctx context.Context, in *domain.Review) (*domain.Review, error) {
	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	stmt := postgres.Builder().
		Insert(reviewsTable).
		Columns("id", "game_id", "user_id", "rating_id", "content").
		Values(id, in.GameID, in.AccountID, in.RatingID, in.Content).
		Suffix("RETURNING " + strings.Join(reviewColumns, ", "))

	var out reviewRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "review", in.RatingID)
	}
	created := out.toDomain()
	return &created, nil
}

// ListByGame returns the reviews of a game with their author username, newest first.
func (r *Repo) ListByGame(ctx context.Context, gameID uuid.UUID) ([]domain.Review, error) {
	stmt := postgres.Builder().
		Select(append(append([]string{}, reviewColumns...), "author_username", "overall_rating")...).
		From(reviewsView).
		Where(squirrel.Eq{"game_id": gameID}).
		OrderBy("created_at DESC", "id")

	var rows []authoredRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "review", gameID)
	}

	out := make([]domain.Review, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
		out[i].AuthorUsername = row.AuthorUsername
		out[i].Overall = row.OverallRating
	}
	return out, nil
}

// GetByID returns a single review.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	stmt := postgres.Builder().
		Select(reviewColumns...).
		From(reviewsTable).
		Where(squirrel.Eq{"id": id})

	var out reviewRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "review", id)
	}
	rv := out.toDomain()
	return &rv, nil
}

// Vote records the account's helpfulness verdict. A repeated vote replaces
// the previous one; the review's tallies are kept current by a trigger.
func (r *Repo) Vote(ctx context.Context, v domain.ReviewVote) (*domain.ReviewVote, error) {
	stmt := postgres.Builder().
		Insert(votesTable).
		Columns("review_id", "user_id", "is_helpful").
		Values(v.ReviewID, v.AccountID, v.Helpful).
		Suffix("ON CONFLICT (review_id, user_id) DO UPDATE SET is_helpful = EXCLUDED.is_helpful " +
			"RETURNING " + strings.Join(voteColumns, ", "))

	var out voteRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "review_vote", v.ReviewID)
	}
	return out.toDomain(), nil
}

// GetVote returns the account's vote on a review.
func (r *Repo) GetVote(ctx context.Context, accountID, reviewID uuid.UUID) (*domain.ReviewVote, error) {
	stmt := postgres.Builder().
		Select(voteColumns...).
		From(votesTable).
		Where(squirrel.Eq{"review_id": reviewID, "user_id": accountID})

	var out voteRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "review_vote", reviewID)
	}
	return out.toDomain(), nil
}
