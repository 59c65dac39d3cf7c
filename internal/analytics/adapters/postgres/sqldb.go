package postgres

import (
	"context"
	"database/sql"
)

// Querier is satisfied by *sql.DB and by the instrumented platform executor.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// NewSQLDB exposes a Querier through the repository's DB interface.
func NewSQLDB(q Querier) DB {
	return querierDB{q}
}

type querierDB struct {
	Querier
}

func (q querierDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := q.Querier.QueryContext(ctx, query, args...)
	if err != nil {
		// A nil *sql.Rows must not leak out as a non-nil RowScanner.
		return nil, err
	}
	return rows, nil
}
