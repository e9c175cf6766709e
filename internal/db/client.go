package db

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
)

// New connects a pgx pool with the given DSN. The pool is established once
// and reused for the process lifetime; callers tolerate a failure here and
// run in fallback-only mode.
func New(ctx context.Context, dsn string) (*Database, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return NewDatabase(pool), nil
}
