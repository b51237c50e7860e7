// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "account_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	AccountID uuid.UUID  `db:"account_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r row) toDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        r.ID,
		AccountID: r.AccountID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// Create inserts a new refresh token and returns the stored row.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	stmt := postgres.Builder().
		Insert(table).
		Columns("account_id", "token_hash", "expires_at").
		Values(accountID, tokenHash, expiresAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "refresh_token", accountID)
	}
	return out.toDomain(), nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	stmt := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()")

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "refresh_token", "hash")
	}
	return out.toDomain(), nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	stmt := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByAccount revokes all active refresh tokens for the given account.
func (r *Repo) RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error {
	stmt := postgres.Builder().
		Update(table).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"account_id": accountID, "revoked_at": nil})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt); err != nil {
		return postgres.MapError(err, "refresh_token", accountID)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens and returns how many went.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	stmt := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Expr("expires_at <= now()"),
			squirrel.NotEq{"revoked_at": nil},
		})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}
	return int(n), nil
}
