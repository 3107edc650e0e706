package moderation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

const maxListLimit = 200

// PendingQueue returns pending terms and pending suggestions, newest first.
func (s *Service) PendingQueue(ctx context.Context) (*Queue, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	var q Queue
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		terms, err := s.terms.ListByStatus(gctx, domain.StatusPending)
		if err != nil {
			return fmt.Errorf("list pending terms: %w", err)
		}
		q.Terms = terms
		return nil
	})
	g.Go(func() error {
		sugs, err := s.suggestions.ListByStatus(gctx, domain.StatusPending)
		if err != nil {
			return fmt.Errorf("list pending suggestions: %w", err)
		}
		q.Suggestions = sugs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &q, nil
}

// ListTerms returns terms in every status, or in status when set.
func (s *Service) ListTerms(ctx context.Context, status *domain.Status, limit, offset int) ([]domain.Term, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	if status != nil && !status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, approved or rejected"})
	}
	if limit < 0 || limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	terms, err := s.terms.List(ctx, domain.TermFilter{Status: status, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}
