// Package suggestion implements the suggestion store on PostgreSQL.
// Suggestions cover both new translations and edits of existing terms.
package suggestion

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

const table = "suggestions"

var columns = []string{
	"id", "term_id",
	"suggested_english_term", "suggested_arabic_term",
	"suggested_description_en", "suggested_description_ar", "suggested_category",
	"reason", "status", "admin_notes",
	"created_by", "reviewed_by", "reviewed_at", "created_at",
}

// Repo provides suggestion persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new suggestion repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a suggestion by primary key, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get suggestion: %w", err)
	}

	var s domain.Suggestion
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, query, args...); err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return &s, nil
}

// ListByStatus returns suggestions in the given status, newest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Suggestion, error) {
	return r.selectMany(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"status": status.String()}).
		OrderBy("created_at DESC", "id"))
}

// ListByTerm returns every suggestion targeting termID, newest first.
func (r *Repo) ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Suggestion, error) {
	return r.selectMany(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"term_id": termID}).
		OrderBy("created_at DESC", "id"))
}

// Create inserts a suggestion and returns the stored row. A missing term
// surfaces as domain.ErrNotFound through the foreign key.
func (r *Repo) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Status == "" {
		s.Status = domain.StatusPending
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "term_id",
			"suggested_english_term", "suggested_arabic_term",
			"suggested_description_en", "suggested_description_ar", "suggested_category",
			"reason", "status", "created_by", "created_at").
		Values(s.ID, s.TermID,
			s.SuggestedEnglishTerm, s.SuggestedArabicTerm,
			s.SuggestedDescriptionEn, s.SuggestedDescriptionAr, s.SuggestedCategory,
			s.Reason, s.Status.String(), s.CreatedBy, s.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert suggestion: %w", err)
	}

	var created domain.Suggestion
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "suggestion", s.ID)
	}
	return &created, nil
}

// UpdateByID overwrites the columns named by the patch and returns the updated row.
func (r *Repo) UpdateByID(ctx context.Context, id uuid.UUID, patch domain.SuggestionPatch) (*domain.Suggestion, error) {
	set := map[string]any{}
	if patch.Status != nil {
		set["status"] = patch.Status.String()
	}
	if patch.SuggestedEnglishTerm != nil {
		set["suggested_english_term"] = *patch.SuggestedEnglishTerm
	}
	if patch.SuggestedArabicTerm != nil {
		set["suggested_arabic_term"] = *patch.SuggestedArabicTerm
	}
	if patch.AdminNotes != nil {
		set["admin_notes"] = *patch.AdminNotes
	}
	if patch.ReviewedBy != nil {
		set["reviewed_by"] = *patch.ReviewedBy
	}
	if patch.ReviewedAt != nil {
		set["reviewed_at"] = *patch.ReviewedAt
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update suggestion: %w", err)
	}

	var updated domain.Suggestion
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.MapError(err, "suggestion", id)
	}
	return &updated, nil
}

func (r *Repo) selectMany(ctx context.Context, b sq.SelectBuilder) ([]domain.Suggestion, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list suggestions: %w", err)
	}

	out := []domain.Suggestion{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	return out, nil
}
