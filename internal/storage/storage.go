// Package storage owns the PostgreSQL connection pool and the books schema.
package storage

import (
	"context"
	_ "embed"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/library-api/internal/logger"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

//go:embed schema.sql
var schema string

// Options configures the connection pool.
type Options struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// Connect opens a pooled connection to PostgreSQL and verifies it with a ping.
// The caller owns the returned pool and must close it.
func Connect(ctx context.Context, opts Options) (*sqlx.DB, error) {
	dsn := withConnectTimeout(opts.DSN, opts.ConnectTimeout)

	db, err := sqlx.ConnectContext(ctx, DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	Configure(db, opts)

	logger.Log.Infow("postgres connection pool ready",
		"max_open_conns", opts.MaxOpenConns,
		"max_idle_conns", opts.MaxIdleConns,
		"conn_max_idle_time", opts.ConnMaxIdleTime,
	)

	return db, nil
}

// Configure applies pool limits to an already opened database handle.
func Configure(db *sqlx.DB, opts Options) {
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns >= 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
}

// Migrate creates the books table and its unique name constraint if missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply books schema: %w", err)
	}
	logger.Log.Debugw("books schema applied")
	return nil
}

// withConnectTimeout adds connect_timeout to dsn unless it already has one.
// Both URL (postgres://...) and keyword/value DSNs are supported.
func withConnectTimeout(dsn string, timeout time.Duration) string {
	if timeout <= 0 || strings.Contains(dsn, "connect_timeout") {
		return dsn
	}
	seconds := strconv.Itoa(int(timeout.Seconds()))
	if seconds == "0" {
		seconds = "1"
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		q.Set("connect_timeout", seconds)
		u.RawQuery = q.Encode()
		return u.String()
	}

	return strings.TrimSpace(dsn + " connect_timeout=" + seconds)
}
