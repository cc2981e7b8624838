// Package sqlstore is the relational store behind every repository: leagues, teams, players,
// memberships, matches, scorecards and users. It runs on postgres in production and on sqlite
// for tests and local runs; query text is written once with "?" bind variables and rebound
// per driver.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	qb "github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/querybuilder"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

type Options struct {
	Driver          Driver
	DSN             string
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// QueryFormatter shapes statements before they are attached to spans.
	QueryFormatter func(query string) string
}

type Store struct {
	db      *sqlx.DB
	dialect dialect
	logger  *logging.Logger
}

// Open connects and pings the database. A failed ping is reported as ErrStoreUnavailable.
func Open(ctx context.Context, opts Options, logger *logging.Logger) (*Store, error) {
	d, err := dialectFor(opts.Driver)
	if err != nil {
		return nil, err
	}

	traceOpts := []otelsql.Option{
		otelsql.WithDBSystem(d.dbSystem),
	}
	if opts.DBName != "" {
		traceOpts = append(traceOpts, otelsql.WithDBName(opts.DBName))
	}
	if opts.QueryFormatter != nil {
		traceOpts = append(traceOpts, otelsql.WithQueryFormatter(opts.QueryFormatter))
	}

	db, err := otelsqlx.Open(d.driverName, d.prepareDSN(opts.DSN), traceOpts...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}
	d.configurePool(db, opts)
	otelsql.ReportDBStatsMetrics(db.DB)

	store := New(db, opts.Driver, logger)
	if err := store.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// New wraps an already opened handle.
func New(db *sqlx.DB, driver Driver, logger *logging.Logger) *Store {
	d, err := dialectFor(driver)
	if err != nil {
		d = postgresDialect
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		db:      db,
		dialect: d,
		logger:  logger.Named("sqlstore"),
	}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Driver() Driver {
	return s.dialect.driver
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return failure.Wrap(err, failure.ErrStoreUnavailable, "Database is unavailable")
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn in one transaction, committing when fn returns nil.
// fn must only use tx: on sqlite the pool holds a single connection.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// deleteByID deletes one row of table. Zero affected rows is NotFound with notFoundMsg.
func (s *Store) deleteByID(ctx context.Context, table, id, notFoundMsg string) error {
	query, args, err := qb.DeleteFrom(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", table, err)
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return s.translate(err, "delete from "+table, errorHints{})
	}
	return requireAffected(res, notFoundMsg)
}

func requireAffected(res sql.Result, notFoundMsg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return failure.NotFound(notFoundMsg)
	}
	return nil
}
