package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"support-analytics-service/internal/config"
)

// QueryObserver receives the duration and outcome of every query.
type QueryObserver interface {
	ObserveQuery(d time.Duration, err error)
}

// Open opens the pool with the configured limits and verifies it with a ping.
func Open(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// Executor is the shared query capability handed to the feature adapters.
// It times every query, logs it at debug level and reports it to the observer.
type Executor struct {
	db       *sql.DB
	log      *logrus.Entry
	observer QueryObserver
}

func NewExecutor(db *sql.DB, log *logrus.Entry, observer QueryObserver) *Executor {
	return &Executor{db: db, log: log, observer: observer}
}

func (e *Executor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := e.db.QueryContext(ctx, query, args...)
	e.record(query, time.Since(start), err)
	return rows, err
}

func (e *Executor) PingContext(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

func (e *Executor) record(query string, d time.Duration, err error) {
	if e.observer != nil {
		e.observer.ObserveQuery(d, err)
	}
	if e.log == nil {
		return
	}

	entry := e.log.WithFields(logrus.Fields{
		"query":       query,
		"duration_ms": d.Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Error("query error")
		return
	}
	entry.Debug("executed query")
}
