// =============================================================================
// FILE: internal/database/postgres.go
// PURPOSE: PostgreSQL connection pool setup and schema bootstrap
// =============================================================================

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema creates the categories table on first start.
// The UNIQUE constraint on name is load-bearing: the service does a
// check-then-insert, and two concurrent creates for the same name can both
// pass the check. The constraint makes the loser of that race fail with a
// unique violation, which the repository surfaces as a duplicate.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT
)`

// NewPool creates and configures a new PostgreSQL connection pool
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify the connection before handing the pool out
	if err := pool.Ping(ctx); err != nil {
		// Close the pool if we can't connect
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// Migrate applies the schema. Idempotent - safe to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
