// Package report implements game report persistence using PostgreSQL.
package report

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const table = "game_reports"

var columns = []string{"id", "game_id", "user_id", "description", "status", "admin_notes", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	GameID      uuid.UUID `db:"game_id"`
	UserID      uuid.UUID `db:"user_id"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	AdminNotes  *string   `db:"admin_notes"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Report {
	return domain.Report{
		ID:          r.ID,
		GameID:      r.GameID,
		AccountID:   r.UserID,
		Description: r.Description,
		Status:      domain.ReportStatus(r.Status),
		AdminNotes:  r.AdminNotes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Create inserts a pending report.
func (r *Repo) Create(ctx context.Context, in *domain.Report) (*domain.Report, error) {
	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	stmt := postgres.Builder().
		Insert(table).
		Columns("id", "game_id", "user_id", "description").
		Values(id, in.GameID, in.AccountID, in.Description).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "report", in.GameID)
	}
	created := out.toDomain()
	return &created, nil
}

// GetByID returns a single report.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	stmt := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}
	rep := out.toDomain()
	return &rep, nil
}

// ListByStatus returns reports in the given state, oldest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(status)}).
		OrderBy("created_at", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "report", status)
	}

	out := make([]domain.Report, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// Resolve closes a pending report. A report that is missing or already closed
// yields domain.ErrNotFound.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, status domain.ReportStatus, notes *string) (*domain.Report, error) {
	stmt := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("admin_notes", notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": string(domain.ReportPending)}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}
	rep := out.toDomain()
	return &rep, nil
}
