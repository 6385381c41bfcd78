package main

import (
	"context"
	"path/filepath"
	"testing"

	"chatapp/pkg/database"

	"github.com/stretchr/testify/require"
)

func useSQLite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chat.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	return path
}

func TestRun_Commands(t *testing.T) {
	path := useSQLite(t)

	require.NoError(t, run("up", ""))
	require.NoError(t, run("populate", "First message!"))
	require.NoError(t, run("populate", "second"))
	require.NoError(t, run("status", ""))

	db, err := database.Open(context.Background(), database.SQLite, path)
	require.NoError(t, err)
	count, err := db.TableCount(context.Background(), "message")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
	require.NoError(t, db.Close())

	require.NoError(t, run("truncate", ""))
	require.NoError(t, run("reset", ""))
	require.NoError(t, run("down", ""))
	require.NoError(t, run("status", ""))
}

func TestRun_Errors(t *testing.T) {
	useSQLite(t)

	require.ErrorIs(t, run("bogus", ""), errUnknownCommand)

	// populate before up has no table to write to
	require.Error(t, run("populate", "x"))

	t.Setenv("DB_DRIVER", "mysql")
	require.Error(t, run("up", ""))
}
