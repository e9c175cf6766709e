package db

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// Unavailable is a DB whose every call fails with the stored error. It is
// installed when the initial connection cannot be established, so the
// facade layer serves fallback data instead of the process exiting.
type Unavailable struct {
	Err error
}

func (u Unavailable) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return u.Err
}

func (u Unavailable) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return u.Err
}

func (u Unavailable) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	return nil, u.Err
}

func (u Unavailable) ExecQueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	return errRow{err: u.Err}
}

type errRow struct {
	err error
}

func (r errRow) Scan(dest ...interface{}) error {
	return r.err
}
