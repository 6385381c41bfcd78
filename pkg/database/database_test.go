package database

import (
	"context"
	"testing"

	chat_errors "chatapp/pkg/errors"

	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRebind(t *testing.T) {
	t.Parallel()

	q := "INSERT INTO message (text, date) VALUES (?, ?)"
	require.Equal(t, q, SQLite.Rebind(q))
	require.Equal(t, "INSERT INTO message (text, date) VALUES ($1, $2)", Postgres.Rebind(q))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Dialect("mysql"), "")
	require.ErrorIs(t, err, chat_errors.ErrUnsupportedDriver)
}

func TestMigrateAndStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openMemory(t)

	exists, err := db.TableExists(ctx, "message")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, db.Migrate(ctx))
	// idempotent
	require.NoError(t, db.Migrate(ctx))

	exists, err = db.TableExists(ctx, "message")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, db.HealthCheck(ctx))
}

func TestSeedTruncateReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openMemory(t)
	require.NoError(t, db.Migrate(ctx))

	n, err := db.Seed(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	count, err := db.TableCount(ctx, "message")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, db.Truncate(ctx))
	count, err = db.TableCount(ctx, "message")
	require.NoError(t, err)
	require.Zero(t, count)

	// ids restart after truncate
	_, err = db.Seed(ctx, &SeedConfig{Messages: []string{"again"}})
	require.NoError(t, err)
	var id int64
	require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM message").Scan(&id))
	require.EqualValues(t, 1, id)

	require.NoError(t, db.Reset(ctx))
	count, err = db.TableCount(ctx, "message")
	require.NoError(t, err)
	require.Zero(t, count)
}
