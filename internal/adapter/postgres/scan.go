package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// Get builds stmt and scans exactly one row into dst. An empty result is
// reported as pgx.ErrNoRows so MapError can translate it.
func Get(ctx context.Context, q Querier, dst any, stmt squirrel.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Get(ctx, q, dst, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return pgx.ErrNoRows
		}
		return err
	}
	return nil
}

// Select builds stmt and scans every row into dst, which must be a pointer to a slice.
func Select(ctx context.Context, q Querier, dst any, stmt squirrel.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, query, args...)
}

// Exec builds stmt, runs it and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, stmt squirrel.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
