package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppPort             string
	AppMode             string
	RealtimePort        string
	APIMetricsPort      string
	RealtimeMetricsPort string
	DBDriver            string
	DatabaseURL         string
	DBHost              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBPort              string
	SQLitePath          string
	RedisURL            string
	CacheTTL            time.Duration
	CacheKeyPrefix      string
	CORSOrigins         []string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		AppPort:             getEnv("APP_PORT", "5000"),
		AppMode:             getEnv("APP_MODE", "debug"),
		RealtimePort:        getEnv("REALTIME_PORT", "5002"),
		APIMetricsPort:      getEnv("API_METRICS_PORT", "5006"),
		RealtimeMetricsPort: getEnv("REALTIME_METRICS_PORT", "5001"),
		DBDriver:            strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "chatapp"),
		DBPort:              getEnv("DB_PORT", "5432"),
		SQLitePath:          getEnv("SQLITE_PATH", "chatapp.db"),
		RedisURL:            getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CacheTTL:            getEnvAsDuration("CACHE_TTL", 300*time.Second),
		CacheKeyPrefix:      getEnv("CACHE_KEY_PREFIX", "chatapp_"),
		CORSOrigins:         getEnvAsList("CORS_ORIGINS", []string{"*"}),
	}
}

// DSN returns the connection string for the configured driver.
// DATABASE_URL wins over the individual DB_* settings.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.SQLitePath
	}
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("5m") or plain seconds ("300").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs := getEnvAsInt(key, -1); secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
