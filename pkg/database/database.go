package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"chatapp/config"
	chat_errors "chatapp/pkg/errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Dialect selects driver-specific SQL.
type Dialect string

const (
	Postgres Dialect = config.DriverPostgres
	SQLite   Dialect = config.DriverSQLite
)

func (d Dialect) driverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite"
}

// Rebind rewrites '?' placeholders into the dialect's bind syntax.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DB is a connection pool bound to a dialect.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Connect opens the database described by cfg.
func Connect(ctx context.Context, cfg *config.Config) (*DB, error) {
	return Open(ctx, Dialect(cfg.DBDriver), cfg.DSN())
}

// Open opens and pings a database. For SQLite, dsn is a file path or ":memory:".
func Open(ctx context.Context, dialect Dialect, dsn string) (*DB, error) {
	if dialect != Postgres && dialect != SQLite {
		return nil, fmt.Errorf("%w: %q", chat_errors.ErrUnsupportedDriver, dialect)
	}

	sqlDB, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == SQLite {
		// SQLite prefers a single writer; an in-memory database also lives on one connection.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		_, _ = sqlDB.ExecContext(ctx, "PRAGMA busy_timeout = 5000")
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{DB: sqlDB, Dialect: dialect}, nil
}

// Migrate creates the schema if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	return db.applyMigration(ctx, "up")
}

// Rollback drops the schema.
func (db *DB) Rollback(ctx context.Context) error {
	return db.applyMigration(ctx, "down")
}

// Reset drops and recreates the schema.
func (db *DB) Reset(ctx context.Context) error {
	if err := db.Rollback(ctx); err != nil {
		return err
	}
	return db.Migrate(ctx)
}

// Truncate removes every message and restarts id assignment.
func (db *DB) Truncate(ctx context.Context) error {
	if db.Dialect == Postgres {
		_, err := db.ExecContext(ctx, "TRUNCATE TABLE message RESTART IDENTITY")
		return err
	}
	if _, err := db.ExecContext(ctx, "DELETE FROM message"); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = 'message'")
	return err
}

func (db *DB) applyMigration(ctx context.Context, direction string) error {
	name := fmt.Sprintf("migrations/%s.%s.sql", db.Dialect, direction)
	content, err := migrationsFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", name, err)
	}
	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", name, err)
	}
	return nil
}

// HealthCheck pings the database with a short deadline.
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", chat_errors.ErrServiceUnavailable, err)
	}
	return nil
}

// TableExists reports whether the named table is present.
func (db *DB) TableExists(ctx context.Context, table string) (bool, error) {
	query := "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	if db.Dialect == Postgres {
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = ?"
	}
	var n int
	if err := db.QueryRowContext(ctx, db.Dialect.Rebind(query), table).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// TableCount returns the number of rows in table. table must be a trusted identifier.
func (db *DB) TableCount(ctx context.Context, table string) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n)
	return n, err
}
