package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"chatapp/config"
	"chatapp/pkg/database"
)

const usage = `
Chat App - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Create the message table
  down        Drop the message table
  status      Show database connection status
  populate    Insert the seed message(s)
  reset       Drop and recreate the message table (DANGEROUS)
  truncate    Delete every message (DANGEROUS)

Flags:
  -message string   Text of the seed message (default "First message!")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go populate
  go run cmd/migrate/main.go -message "hello" populate
  DB_DRIVER=sqlite SQLITE_PATH=chat.db go run cmd/migrate/main.go status
`

func main() {
	seedMessage := flag.String("message", "First message!", "Text of the seed message")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *seedMessage); err != nil {
		log.Printf("❌ %v", err)
		if errors.Is(err, errUnknownCommand) {
			flag.Usage()
		}
		os.Exit(1)
	}
}

var errUnknownCommand = errors.New("unknown command")

func run(command, seedMessage string) error {
	ctx := context.Background()

	// Load config and connect to database
	cfg := config.LoadConfig()
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	switch command {
	case "up":
		return runMigrationsUp(ctx, db)
	case "down":
		return runMigrationsDown(ctx, db)
	case "status":
		return showStatus(ctx, db)
	case "populate":
		return runPopulate(ctx, db, seedMessage)
	case "reset":
		return runReset(ctx, db)
	case "truncate":
		return runTruncate(ctx, db)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}
}

func runMigrationsUp(ctx context.Context, db *database.DB) error {
	log.Println("🚀 Running migrations UP...")

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("✅ Migrations completed successfully!")
	return nil
}

func runMigrationsDown(ctx context.Context, db *database.DB) error {
	log.Println("⬇️  Rolling back migrations...")

	if err := db.Rollback(ctx); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	log.Println("✅ Rollback completed successfully!")
	return nil
}

func showStatus(ctx context.Context, db *database.DB) error {
	log.Println("🔍 Checking database status...")

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	log.Printf("✅ Database connection: OK (%s)", db.Dialect)

	exists, err := db.TableExists(ctx, "message")
	if err != nil {
		return fmt.Errorf("error checking table message: %w", err)
	}
	if !exists {
		log.Printf("❌ Table %-10s does not exist", "message")
		return nil
	}

	count, err := db.TableCount(ctx, "message")
	if err != nil {
		return fmt.Errorf("error counting rows in message: %w", err)
	}
	log.Printf("✅ Table %-10s exists (%d rows)", "message", count)
	return nil
}

func runPopulate(ctx context.Context, db *database.DB, text string) error {
	log.Println("🌱 Populating database...")

	n, err := db.Seed(ctx, &database.SeedConfig{Messages: []string{text}})
	if err != nil {
		return fmt.Errorf("populate failed: %w", err)
	}

	log.Printf("✅ Inserted %d message(s)", n)
	return nil
}

func runReset(ctx context.Context, db *database.DB) error {
	log.Println("⚠️  WARNING: This will DROP the message table and re-create it!")

	if err := db.Reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	log.Println("✅ Database reset completed!")
	return nil
}

func runTruncate(ctx context.Context, db *database.DB) error {
	log.Println("⚠️  WARNING: This will delete every message!")

	if err := db.Truncate(ctx); err != nil {
		return fmt.Errorf("truncate failed: %w", err)
	}

	log.Println("✅ Message table truncated!")
	return nil
}
