package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "DATABASE_URL", "CACHE_TTL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_PORT", "5000")

	cfg := FromEnv()

	require.Equal(t, "5000", cfg.AppPort)
	require.Equal(t, 300*time.Second, cfg.CacheTTL)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, "chatapp_", cfg.CacheKeyPrefix)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/chat.db")
	t.Setenv("CACHE_TTL", "45")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")

	cfg := FromEnv()

	require.Equal(t, DriverSQLite, cfg.DBDriver)
	require.Equal(t, "/tmp/chat.db", cfg.DSN())
	require.Equal(t, 45*time.Second, cfg.CacheTTL)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestDSN_Postgres(t *testing.T) {
	cfg := &Config{
		DBDriver:   DriverPostgres,
		DBHost:     "db",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "chat",
		DBPort:     "5432",
	}
	require.Equal(t, "host=db user=u password=p dbname=chat port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())

	cfg.DatabaseURL = "postgres://u:p@db:5432/chat"
	require.Equal(t, "postgres://u:p@db:5432/chat", cfg.DSN())
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("X_TTL", "2m")
	require.Equal(t, 2*time.Minute, getEnvAsDuration("X_TTL", time.Second))

	t.Setenv("X_TTL", "garbage")
	require.Equal(t, time.Second, getEnvAsDuration("X_TTL", time.Second))
}
