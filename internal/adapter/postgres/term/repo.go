// Package term implements the dictionary term store on PostgreSQL.
package term

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

const table = "terms"

var columns = []string{
	"id", "english_term", "arabic_term", "description_en", "description_ar",
	"category", "status", "created_by", "created_at", "updated_at",
}

// searchColumns are matched with OR by Search and List.
var searchColumns = []string{"english_term", "arabic_term", "description_en", "description_ar"}

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new term repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns a term by primary key, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get term: %w", err)
	}

	var t domain.Term
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, query, args...); err != nil {
		return nil, postgres.MapError(err, "term", id)
	}
	return &t, nil
}

// ListByStatus returns every term in the given status, newest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Term, error) {
	s := status
	return r.List(ctx, domain.TermFilter{Status: &s})
}

// List returns terms matching the filter, newest first. A zero Limit means no limit.
func (r *Repo) List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id")

	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Search != nil {
		if q := strings.TrimSpace(*filter.Search); q != "" {
			b = b.Where(matchAny(q))
		}
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	return r.selectMany(ctx, b)
}

// Search returns approved terms whose English, Arabic or definition text
// contains q (case-insensitive), ordered alphabetically by English text.
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]domain.Term, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"status": domain.StatusApproved.String()}).
		Where(matchAny(q)).
		OrderBy("english_term ASC", "id")

	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	return r.selectMany(ctx, b)
}

// Create inserts a term and returns the stored row. ID and CreatedAt are
// generated when zero.
func (r *Repo) Create(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "english_term", "arabic_term", "description_en", "description_ar",
			"category", "status", "created_by", "created_at").
		Values(t.ID, t.EnglishTerm, t.ArabicTerm, t.DescriptionEn, t.DescriptionAr,
			t.Category, t.Status.String(), t.CreatedBy, t.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert term: %w", err)
	}

	var created domain.Term
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "term", t.ID)
	}
	return &created, nil
}

// UpdateByID overwrites the columns named by the patch and returns the
// updated row. updated_at is always bumped.
func (r *Repo) UpdateByID(ctx context.Context, id uuid.UUID, patch domain.TermPatch) (*domain.Term, error) {
	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	set := map[string]any{"updated_at": updatedAt}
	if patch.EnglishTerm != nil {
		set["english_term"] = *patch.EnglishTerm
	}
	if patch.ArabicTerm != nil {
		set["arabic_term"] = *patch.ArabicTerm
	}
	if patch.DescriptionEn != nil {
		set["description_en"] = *patch.DescriptionEn
	}
	if patch.DescriptionAr != nil {
		set["description_ar"] = *patch.DescriptionAr
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Status != nil {
		set["status"] = patch.Status.String()
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update term: %w", err)
	}

	var updated domain.Term
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.MapError(err, "term", id)
	}
	return &updated, nil
}

func (r *Repo) selectMany(ctx context.Context, b sq.SelectBuilder) ([]domain.Term, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list terms: %w", err)
	}

	terms := []domain.Term{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &terms, query, args...); err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

func matchAny(q string) sq.Or {
	pattern := postgres.ContainsPattern(q)
	or := make(sq.Or, 0, len(searchColumns))
	for _, col := range searchColumns {
		or = append(or, sq.ILike{col: pattern})
	}
	return or
}
