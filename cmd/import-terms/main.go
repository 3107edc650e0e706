// Command import-terms loads a glossary spreadsheet into the moderation
// queue. Every row becomes a pending term that an admin still has to
// approve.
//
// Usage:
//
//	import-terms -file=glossary.xlsx [-sheet=Sheet1] [-start-row=2] [-dry-run]
//
// Columns default to A..E: English, Arabic, English description, Arabic
// description, category.
//
// Exit codes: 0 = every row imported, 1 = error, 2 = some rows failed.
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
	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres/term"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/app"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/config"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/importer"
)

func main() {
	layout := importer.DefaultLayout()

	file := flag.String("file", "", "path to the .xlsx glossary")
	flag.StringVar(&layout.Sheet, "sheet", layout.Sheet, "sheet name (empty = first sheet)")
	flag.IntVar(&layout.StartRow, "start-row", layout.StartRow, "first data row, 1-based")
	flag.StringVar(&layout.English, "col-en", layout.English, "English term column")
	flag.StringVar(&layout.Arabic, "col-ar", layout.Arabic, "Arabic term column")
	flag.StringVar(&layout.DescriptionEn, "col-desc-en", layout.DescriptionEn, "English description column")
	flag.StringVar(&layout.DescriptionAr, "col-desc-ar", layout.DescriptionAr, "Arabic description column")
	flag.StringVar(&layout.Category, "col-category", layout.Category, "category column")
	dryRun := flag.Bool("dry-run", false, "validate rows without writing")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: import-terms -file=glossary.xlsx")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	rows, err := importer.ReadFile(*file, layout)
	if err != nil {
		logger.Error("read spreadsheet", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, app.ApplicationName("import-terms"))
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	res, err := importer.New(term.New(pool), *dryRun, logger).Import(ctx, rows)
	if err != nil {
		logger.Error("import aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, f := range res.Failed {
		logger.Warn("row not imported", slog.Int("line", f.Line), slog.String("error", f.Err.Error()))
	}
	if len(res.Failed) > 0 {
		os.Exit(2)
	}
}
