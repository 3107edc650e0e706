package dictionary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/pkg/ctxutil"
)

// Search returns approved terms matching query in any text column. The query
// is NFKC-normalized before it reaches the cache or the store. A blank query
// returns an empty result without touching the store.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.Term, error) {
	q := domain.NormalizeQuery(query)
	if q == "" {
		return []domain.Term{}, nil
	}
	limit = s.clampLimit(limit)

	terms, err := s.cache.GetOrLoad(ctx, q, limit, func(ctx context.Context) ([]domain.Term, error) {
		return s.terms.Search(ctx, q, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("search terms: %w", err)
	}
	return terms, nil
}

// GetTerm returns a term by id. Pending and rejected terms are visible only
// to admins; everyone else gets domain.ErrNotFound.
func (s *Service) GetTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	term, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	if term.Status != domain.StatusApproved && !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}
	return term, nil
}

// ListApproved pages through approved terms.
func (s *Service) ListApproved(ctx context.Context, limit, offset int) ([]domain.Term, error) {
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must be non-negative")
	}

	approved := domain.StatusApproved
	terms, err := s.terms.List(ctx, domain.TermFilter{
		Status: &approved,
		Limit:  s.clampLimit(limit),
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list approved terms: %w", err)
	}
	return terms, nil
}
