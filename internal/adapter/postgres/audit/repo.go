// Package audit implements the append-only moderation trail using PostgreSQL.
package audit

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const table = "moderation_audit"

var columns = []string{"id", "actor_id", "entity_type", "entity_id", "action", "changes", "created_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// DefaultLimit caps GetByEntity when no limit is given.
const DefaultLimit = 50

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID      `db:"id"`
	ActorID    uuid.UUID      `db:"actor_id"`
	EntityType string         `db:"entity_type"`
	EntityID   uuid.UUID      `db:"entity_id"`
	Action     string         `db:"action"`
	Changes    map[string]any `db:"changes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r row) toDomain() domain.AuditRecord {
	return domain.AuditRecord{
		ID:         r.ID,
		ActorID:    r.ActorID,
		EntityType: domain.AuditEntity(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		Changes:    r.Changes,
		CreatedAt:  r.CreatedAt,
	}
}

// Create appends a record. Inside a transaction it commits or rolls back
// together with the decision it describes.
func (r *Repo) Create(ctx context.Context, rec domain.AuditRecord) (*domain.AuditRecord, error) {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	changes := rec.Changes
	if changes == nil {
		changes = map[string]any{}
	}

	stmt := postgres.Builder().
		Insert(table).
		Columns("id", "actor_id", "entity_type", "entity_id", "action", "changes").
		Values(id, rec.ActorID, string(rec.EntityType), rec.EntityID, string(rec.Action), changes).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "audit record", rec.EntityID)
	}
	created := out.toDomain()
	return &created, nil
}

// GetByEntity returns the trail of one submission or report, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.AuditEntity, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, stmt); err != nil {
		return nil, postgres.MapError(err, "audit record", entityID)
	}

	out := make([]domain.AuditRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}
