package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = errors.New("not found")

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
)

func init() {
	// sqlx does not know modernc's driver name; queries are written with ? already.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// PoolOptions tunes the connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens and pings a database for one of the supported drivers.
func Connect(ctx context.Context, driver, dsn string, pool PoolOptions) (*sqlx.DB, error) {
	switch driver {
	case DriverPostgres, DriverPgx, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	dbConn, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if pool.MaxOpenConns > 0 {
		dbConn.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		dbConn.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		dbConn.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	return dbConn, nil
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.ExtContext
	Rebind(query string) string
}

// queries holds every statement; Storage runs them on the pool and Tx inside a transaction.
type queries struct {
	ext queryer
}

func (q queries) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	err := sqlx.GetContext(ctx, q.ext, dest, q.ext.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (q queries) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return sqlx.SelectContext(ctx, q.ext, dest, q.ext.Rebind(query), args...)
}

func (q queries) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := q.ext.ExecContext(ctx, q.ext.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type Storage struct {
	queries
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{queries: queries{ext: db}, db: db}
}

// DB exposes the pool for migrations and health checks.
func (s *Storage) DB() *sqlx.DB {
	return s.db
}

// Tx is a unit of work; every statement commits or rolls back together.
type Tx struct {
	queries
}

// InTx runs fn inside a transaction, rolling back when fn returns an error.
func (s *Storage) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	sqlTx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&Tx{queries: queries{ext: sqlTx}}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// setBuilder collects "column = ?" assignments for partial updates.
type setBuilder struct {
	cols []string
	args []interface{}
}

func (b *setBuilder) add(col string, v interface{}) {
	b.cols = append(b.cols, col+" = ?")
	b.args = append(b.args, v)
}

func (b *setBuilder) clause() string {
	return strings.Join(b.cols, ", ")
}
