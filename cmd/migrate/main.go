// Command migrate applies the embedded database migrations.
//
// Usage:
//
//	migrate            apply pending migrations
//	migrate -status    list migrations and whether they are applied
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/app"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/config"
)

func main() {
	status := flag.Bool("status", false, "print migration status instead of migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, app.ApplicationName("migrate"))
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *status {
		list, err := postgres.MigrationStatus(ctx, pool)
		if err != nil {
			logger.Error("migration status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range list {
			fmt.Printf("%-8d %-10s %s\n", s.Source.Version, s.State, s.Source.Path)
		}
		return
	}

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("migrations up to date")
}
