// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/rotection-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const table = "accounts"

var columns = []string{
	"id", "email", "username", "display_name", "avatar_url", "provider", "provider_id",
	"role", "roblox_user_id", "roblox_username", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	Username       *string   `db:"username"`
	DisplayName    *string   `db:"display_name"`
	AvatarURL      *string   `db:"avatar_url"`
	Provider       string    `db:"provider"`
	ProviderID     string    `db:"provider_id"`
	Role           string    `db:"role"`
	RobloxUserID   *int64    `db:"roblox_user_id"`
	RobloxUsername *string   `db:"roblox_username"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Account {
	a := &domain.Account{
		ID:             r.ID,
		Email:          r.Email,
		Username:       r.Username,
		AvatarURL:      r.AvatarURL,
		Provider:       domain.AuthProvider(r.Provider),
		ProviderID:     r.ProviderID,
		Role:           domain.Role(r.Role),
		RobloxUserID:   r.RobloxUserID,
		RobloxUsername: r.RobloxUsername,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.DisplayName != nil {
		a.DisplayName = *r.DisplayName
	}
	return a
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByProvider returns the account created by the given social login.
func (r *Repo) GetByProvider(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"provider": string(provider), "provider_id": providerID}, providerID)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.Account, error) {
	stmt := postgres.Builder().Select(columns...).From(table).Where(where)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "account", key)
	}
	return out.toDomain(), nil
}

// Create inserts a new account and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	stmt := postgres.Builder().
		Insert(table).
		Columns("id", "email", "username", "display_name", "avatar_url", "provider", "provider_id", "role").
		Values(a.ID, a.Email, a.Username, a.DisplayName, a.AvatarURL, string(a.Provider), a.ProviderID, string(a.Role)).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}
	return out.toDomain(), nil
}

// UpdateProfile refreshes the display fields copied from the social login.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, displayName string, avatarURL *string) (*domain.Account, error) {
	return r.update(ctx, id, map[string]any{
		"display_name": displayName,
		"avatar_url":   avatarURL,
	})
}

// SetUsername sets the account's public username. A username taken by another
// account (case-insensitively) fails with domain.ErrAlreadyExists.
func (r *Repo) SetUsername(ctx context.Context, id uuid.UUID, username string) (*domain.Account, error) {
	return r.update(ctx, id, map[string]any{"username": username})
}

// LinkRoblox attaches a Roblox identity, replacing any previous one. A Roblox
// id already linked to another account fails with domain.ErrAlreadyExists.
func (r *Repo) LinkRoblox(ctx context.Context, id uuid.UUID, link domain.RobloxLink) (*domain.Account, error) {
	return r.update(ctx, id, map[string]any{
		"roblox_user_id":  link.UserID,
		"roblox_username": link.Username,
	})
}

// UnlinkRoblox clears the linked Roblox identity. Unlinking an account that
// has no link is not an error.
func (r *Repo) UnlinkRoblox(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.update(ctx, id, map[string]any{
		"roblox_user_id":  nil,
		"roblox_username": nil,
	})
}

// SetRole changes the authorization role of the account matched by email.
func (r *Repo) SetRole(ctx context.Context, email string, role domain.Role) (*domain.Account, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("account %s: role %q: %w", email, role, domain.ErrValidation)
	}

	stmt := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"email": email}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "account", email)
	}
	return out.toDomain(), nil
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.Account, error) {
	stmt := postgres.Builder().
		Update(table).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, stmt); err != nil {
		return nil, postgres.MapError(err, "account", id)
	}
	return out.toDomain(), nil
}
