package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// Constraint names that services need to tell apart.
const (
	ConstraintAccountUsername = "accounts_username_key"
	ConstraintAccountRoblox   = "accounts_roblox_user_id_key"
	ConstraintGameRobloxID    = "games_roblox_id_key"
	ConstraintPendingEntry    = "game_submissions_pending_roblox_id_key"
)

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row in the message and may be any printable value (uuid, roblox id, hash).
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.ConstraintName, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %s: %w", entity, key, pgErr.ConstraintName, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

// IsConstraint reports whether err is a postgres error raised by the named constraint.
func IsConstraint(err error, name string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == name
}
