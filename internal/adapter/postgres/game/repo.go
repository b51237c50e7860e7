// Package game implements catalog persistence over the games table and the
// games_with_ratings aggregate view.
package game

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const (
	table = "games"
	view  = "games_with_ratings"
)

var gameColumns = []string{
	"id", "roblox_id", "title", "developer", "description", "thumbnail_url", "roblox_url",
	"genre", "age_rating", "verified", "status", "total_plays", "submitted_by", "approved_by",
	"created_at", "updated_at",
}

var statsColumns = []string{
	"avg_honesty", "avg_safety", "avg_fairness", "avg_age_appropriate",
	"avg_overall_rating", "rating_count", "safety_score",
}

// Repo provides catalog reads and writes backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new game repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type gameRow struct {
	ID           uuid.UUID  `db:"id"`
	RobloxID     string     `db:"roblox_id"`
	Title        string     `db:"title"`
	Developer    string     `db:"developer"`
	Description  string     `db:"description"`
	ThumbnailURL *string    `db:"thumbnail_url"`
	RobloxURL    string     `db:"roblox_url"`
	Genre        *string    `db:"genre"`
	AgeRating    string     `db:"age_rating"`
	Verified     bool       `db:"verified"`
	Status       string     `db:"status"`
	TotalPlays   string     `db:"total_plays"`
	SubmittedBy  *uuid.UUID `db:"submitted_by"`
	ApprovedBy   *uuid.UUID `db:"approved_by"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type statsRow struct {
	gameRow
	AvgHonesty        float64 `db:"avg_honesty"`
	AvgSafety         float64 `db:"avg_safety"`
	AvgFairness       float64 `db:"avg_fairness"`
	AvgAgeAppropriate float64 `db:"avg_age_appropriate"`
	AvgOverall        float64 `db:"avg_overall_rating"`
	RatingCount       int     `db:"rating_count"`
	SafetyScore       int     `db:"safety_score"`
}

func (r gameRow) toDomain() domain.Game {
	return domain.Game{
		ID:           r.ID,
		RobloxID:     r.RobloxID,
		Title:        r.Title,
		Developer:    r.Developer,
		Description:  r.Description,
		ThumbnailURL: r.ThumbnailURL,
		RobloxURL:    r.RobloxURL,
		Genre:        r.Genre,
		AgeRating:    r.AgeRating,
		Verified:     r.Verified,
		Status:       domain.ModerationStatus(r.Status),
		TotalPlays:   r.TotalPlays,
		SubmittedBy:  r.SubmittedBy,
		ApprovedBy:   r.ApprovedBy,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r statsRow) toDomain() domain.GameWithStats {
	return domain.GameWithStats{
		Game: r.gameRow.toDomain(),
		Stats: domain.GameStats{
			AvgHonesty:        r.AvgHonesty,
			AvgSafety:         r.AvgSafety,
			AvgFairness:       r.AvgFairness,
			AvgAgeAppropriate: r.AvgAgeAppropriate,
			AvgOverall:        r.AvgOverall,
			RatingCount:       r.RatingCount,
			SafetyScore:       r.SafetyScore,
		},
	}
}

func selectStats() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(append(append([]string{}, gameColumns...), statsColumns...)...).
		From(view)
}

// List returns approved games matching the filter. Limit defaults to 50 and
// is capped at 200; an unknown sort falls back to popular.
func (r *Repo) List(ctx context.Context, f domain.GameFilter) ([]domain.GameWithStats, error) {
	f = normalize(f)
	stmt := selectStats().Where(squirrel.Eq{"status": string(domain.StatusApproved)})

	if q := strings.TrimSpace(f.Search); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		stmt = stmt.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"developer": pattern},
		})
	}
	if f.Genre != "" && f.Genre != domain.AllGenres {
		stmt = stmt.Where(squirrel.Eq{"genre": f.Genre})
	}
	if f.VerifiedOnly {
		stmt = stmt.Where(squirrel.Eq{"verified": true})
	}

	stmt = stmt.OrderBy(orderBy(f.Sort)...).Limit(uint64(f.Limit))
	if f.Offset > 0 {
		stmt = stmt.Offset(uint64(f.Offset))
	}

	return r.selectStats(ctx, stmt)
}

// Featured returns verified approved games with a safety score of at least
// minScore, best rated first.
func (r *Repo) Featured(ctx context.Context, minScore, limit int) ([]domain.GameWithStats, error) {
	stmt := selectStats().
		Where(squirrel.Eq{"status": string(domain.StatusApproved), "verified": true}).
		Where(squirrel.GtOrEq{"safety_score": minScore}).
		OrderBy("avg_overall_rating DESC", "id").
		Limit(uint64(limit))

	return r.selectStats(ctx, stmt)
}

// GetByID returns a game with its aggregate regardless of moderation status.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error) {
	return r.getStats(ctx, squirrel.Eq{"id": id}, id)
}

// GetByRobloxID returns a game by its Roblox place id regardless of moderation status.
func (r *Repo) GetByRobloxID(ctx context.Context, robloxID string) (*domain.GameWithStats, error) {
	return r.getStats(ctx, squirrel.Eq{"roblox_id": robloxID}, robloxID)
}

// Genres returns the sorted distinct genres of approved games.
func (r *Repo) Genres(ctx context.Context) ([]string, error) {
	stmt := postgres.Builder().
		Select("DISTINCT genre").
		From(table).
		Where(squirrel.Eq{"status": string(domain.StatusApproved)}).
		Where(squirrel.NotEq{"genre": nil}).
		Where(squirrel.NotEq{"genre": ""}).
		OrderBy("genre")

	var genres []string
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &genres, stmt); err != nil {
		return nil, postgres.MapError(err, "game", "genres")
	}
	return genres, nil
}

// Create inserts a game. A duplicate Roblox id fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	stmt := postgres.Builder().
		Insert(table).
		Columns(
			"id", "roblox_id", "title", "developer", "description", "thumbnail_url", "roblox_url",
			"genre", "age_rating", "verified", "status", "total_plays", "submitted_by", "approved_by",
		).
		Values(
			g.ID, g.RobloxID, g.Title, g.Developer, g.Description, g.ThumbnailURL, g.RobloxURL,
			g.Genre, g.AgeRating, g.Verified, string(g.Status), g.TotalPlays, g.SubmittedBy, g.ApprovedBy,
		).
		Suffix("RETURNING " + strings.Join(gameColumns, ", "))

	var out gameRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "game", g.RobloxID)
	}
	created := out.toDomain()
	return &created, nil
}

// ListForRefresh returns every game that carries a Roblox id, oldest first.
func (r *Repo) ListForRefresh(ctx context.Context) ([]domain.Game, error) {
	stmt := postgres.Builder().
		Select(gameColumns...).
		From(table).
		Where(squirrel.NotEq{"roblox_id": ""}).
		OrderBy("created_at", "id")

	var rows []gameRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "game", "refresh")
	}

	out := make([]domain.Game, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// UpdateMetadata writes refreshed catalog fields. Nil fields are left unchanged;
// an update with no fields is a no-op.
func (r *Repo) UpdateMetadata(ctx context.Context, id uuid.UUID, upd domain.GameMetadataUpdate) error {
	set := map[string]any{}
	if upd.ThumbnailURL != nil {
		set["thumbnail_url"] = *upd.ThumbnailURL
	}
	if upd.TotalPlays != nil {
		set["total_plays"] = *upd.TotalPlays
	}
	if len(set) == 0 {
		return nil
	}

	stmt := postgres.Builder().
		Update(table).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "game", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "game", id)
	}
	return nil
}

func (r *Repo) getStats(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.GameWithStats, error) {
	var out statsRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, selectStats().Where(where)); err != nil {
		return nil, postgres.MapError(err, "game", key)
	}
	g := out.toDomain()
	return &g, nil
}

func (r *Repo) selectStats(ctx context.Context, stmt squirrel.SelectBuilder) ([]domain.GameWithStats, error) {
	var rows []statsRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "game", "list")
	}

	out := make([]domain.GameWithStats, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}
