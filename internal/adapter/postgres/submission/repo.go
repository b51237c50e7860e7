// Package submission implements game submission persistence using PostgreSQL.
package submission

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const table = "game_submissions"

var columns = []string{
	"id", "roblox_url", "roblox_id", "title", "developer", "description", "thumbnail_url", "genre",
	"submitter_id", "status", "admin_notes", "reviewed_by", "reviewed_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new submission repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	RobloxURL    string     `db:"roblox_url"`
	RobloxID     string     `db:"roblox_id"`
	Title        *string    `db:"title"`
	Developer    *string    `db:"developer"`
	Description  *string    `db:"description"`
	ThumbnailURL *string    `db:"thumbnail_url"`
	Genre        *string    `db:"genre"`
	SubmitterID  uuid.UUID  `db:"submitter_id"`
	Status       string     `db:"status"`
	AdminNotes   *string    `db:"admin_notes"`
	ReviewedBy   *uuid.UUID `db:"reviewed_by"`
	ReviewedAt   *time.Time `db:"reviewed_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Submission {
	return domain.Submission{
		ID:           r.ID,
		RobloxURL:    r.RobloxURL,
		RobloxID:     r.RobloxID,
		Title:        r.Title,
		Developer:    r.Developer,
		Description:  r.Description,
		ThumbnailURL: r.ThumbnailURL,
		Genre:        r.Genre,
		SubmitterID:  r.SubmitterID,
		Status:       domain.ModerationStatus(r.Status),
		AdminNotes:   r.AdminNotes,
		ReviewedBy:   r.ReviewedBy,
		ReviewedAt:   r.ReviewedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Create inserts a pending submission. A second pending submission for the
// same Roblox id fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, in *domain.Submission) (*domain.Submission, error) {
	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	stmt := postgres.Builder().
		Insert(table).
		Columns("id", "roblox_url", "roblox_id", "title", "developer", "description", "thumbnail_url", "genre", "submitter_id").
		Values(id, in.RobloxURL, in.RobloxID, in.Title, in.Developer, in.Description, in.ThumbnailURL, in.Genre, in.SubmitterID).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "submission", in.RobloxID)
	}
	created := out.toDomain()
	return &created, nil
}

// GetByID returns a single submission.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	stmt := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}
	s := out.toDomain()
	return &s, nil
}

// HasPending reports whether a pending submission exists for the Roblox id.
func (r *Repo) HasPending(ctx context.Context, robloxID string) (bool, error) {
	stmt := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"roblox_id": robloxID, "status": string(domain.StatusPending)}).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	var exists bool
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &exists, stmt); err != nil {
		return false, postgres.MapError(err, "submission", robloxID)
	}
	return exists, nil
}

// ListByStatus returns submissions in the given state, oldest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.ModerationStatus) ([]domain.Submission, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(status)}).
		OrderBy("created_at", "id"), status)
}

// ListBySubmitter returns the account's submissions, newest first.
func (r *Repo) ListBySubmitter(ctx context.Context, submitterID uuid.UUID) ([]domain.Submission, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"submitter_id": submitterID}).
		OrderBy("created_at DESC", "id"), submitterID)
}

// Review moves a pending submission to approved or rejected. A submission that
// is missing or already reviewed yields domain.ErrNotFound.
func (r *Repo) Review(ctx context.Context, id uuid.UUID, status domain.ModerationStatus, reviewerID uuid.UUID, notes *string) (*domain.Submission, error) {
	stmt := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("admin_notes", notes).
		Set("reviewed_by", reviewerID).
		Set("reviewed_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": string(domain.StatusPending)}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}
	s := out.toDomain()
	return &s, nil
}

func (r *Repo) list(ctx context.Context, stmt squirrel.SelectBuilder, key any) ([]domain.Submission, error) {
	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "submission", key)
	}

	out := make([]domain.Submission, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}
