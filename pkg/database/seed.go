package database

import (
	"context"
	"fmt"
	"time"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	Messages []string
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		Messages: []string{"First message!"},
	}
}

// Seed inserts the configured messages and returns how many rows were added.
func (db *DB) Seed(ctx context.Context, cfg *SeedConfig) (int, error) {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}

	query := db.Dialect.Rebind("INSERT INTO message (text, date) VALUES (?, ?)")
	for i, text := range cfg.Messages {
		if _, err := db.ExecContext(ctx, query, text, time.Now().UTC()); err != nil {
			return i, fmt.Errorf("failed to seed message %q: %w", text, err)
		}
	}
	return len(cfg.Messages), nil
}
