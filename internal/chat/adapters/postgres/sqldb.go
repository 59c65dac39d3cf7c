package postgres

import (
	"context"
	"database/sql"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// Querier is satisfied by *sql.DB and by the instrumented platform executor.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func NewSQLDB(q Querier) DB {
	return querierDB{q}
}

type querierDB struct {
	Querier
}

func (q querierDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := q.Querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
