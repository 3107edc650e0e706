package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/dictionary"
)

type termCreator interface {
	Create(ctx context.Context, t *domain.Term) (*domain.Term, error)
}

// RowError reports why one line was not imported.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// Result summarizes an import run.
type Result struct {
	Created    int
	Duplicates int
	Failed     []RowError
}

// Importer writes spreadsheet rows as pending terms so they pass through
// the normal moderation queue.
type Importer struct {
	terms  termCreator
	dryRun bool
	log    *slog.Logger
}

// New creates an Importer. With dryRun set, rows are validated but nothing
// is written.
func New(terms termCreator, dryRun bool, log *slog.Logger) *Importer {
	return &Importer{
		terms:  terms,
		dryRun: dryRun,
		log:    log.With("component", "importer"),
	}
}

// Import validates every row with the same rules as a contributor
// submission and creates one pending term per distinct English term.
// Row failures are collected; only a cancelled context aborts the run.
func (im *Importer) Import(ctx context.Context, rows []Row) (*Result, error) {
	res := &Result{}
	seen := make(map[string]int, len(rows))

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		input := dictionary.SubmitTermInput{
			EnglishTerm:   row.English,
			ArabicTerm:    row.Arabic,
			DescriptionEn: optional(row.DescriptionEn),
			DescriptionAr: optional(row.DescriptionAr),
			Category:      optional(row.Category),
		}
		if err := input.Validate(); err != nil {
			res.Failed = append(res.Failed, RowError{Line: row.Line, Err: err})
			continue
		}

		key := domain.NormalizeText(row.English)
		if first, dup := seen[key]; dup {
			im.log.DebugContext(ctx, "duplicate row skipped",
				slog.Int("line", row.Line), slog.Int("first_line", first))
			res.Duplicates++
			continue
		}
		seen[key] = row.Line

		if im.dryRun {
			res.Created++
			continue
		}

		arabic := row.Arabic
		_, err := im.terms.Create(ctx, &domain.Term{
			EnglishTerm:   row.English,
			ArabicTerm:    &arabic,
			DescriptionEn: input.DescriptionEn,
			DescriptionAr: input.DescriptionAr,
			Category:      input.Category,
			Status:        domain.StatusPending,
		})
		if err != nil {
			res.Failed = append(res.Failed, RowError{Line: row.Line, Err: err})
			continue
		}
		res.Created++
	}

	im.log.InfoContext(ctx, "import finished",
		slog.Int("created", res.Created),
		slog.Int("duplicates", res.Duplicates),
		slog.Int("failed", len(res.Failed)),
		slog.Bool("dry_run", im.dryRun),
	)
	return res, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
