// Package comment implements the append-only term comment store on PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

const (
	table     = "comments"
	returning = "RETURNING id, term_id, user_id, comment AS text, created_at"
)

var columns = []string{"id", "term_id", "user_id", "comment AS text", "created_at"}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new comment repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a comment. A missing term surfaces as domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "term_id", "user_id", "comment", "created_at").
		Values(c.ID, c.TermID, c.UserID, c.Text, c.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert comment: %w", err)
	}

	var created domain.Comment
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, query, args...); err != nil {
		return nil, postgres.MapError(err, "term", c.TermID)
	}
	return &created, nil
}

// ListByTerm returns comments for a term, newest first.
func (r *Repo) ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Comment, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"term_id": termID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	out := []domain.Comment{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return out, nil
}
