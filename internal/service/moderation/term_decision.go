package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/metrics"
)

// ApprovePendingTerm approves a directly submitted term without changing
// its fields. The term must carry both English and Arabic text.
func (s *Service) ApprovePendingTerm(ctx context.Context, termID uuid.UUID) (*domain.Term, error) {
	return s.decideTerm(ctx, termID, domain.StatusApproved, actionApproveTerm)
}

// RejectPendingTerm rejects a directly submitted term.
func (s *Service) RejectPendingTerm(ctx context.Context, termID uuid.UUID) (*domain.Term, error) {
	return s.decideTerm(ctx, termID, domain.StatusRejected, actionRejectTerm)
}

// decideTerm moves a pending term to target. Repeating the same decision is
// a no-op; the opposite decision on a decided term is ErrConflict.
func (s *Service) decideTerm(ctx context.Context, termID uuid.UUID, target domain.Status, action string) (*domain.Term, error) {
	reviewer, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateID("term_id", termID); err != nil {
		return nil, err
	}

	term, err := s.terms.GetByID(ctx, termID)
	if err != nil {
		s.record(action, outcomeOf(err))
		return nil, fmt.Errorf("get term: %w", err)
	}

	if term.Status == target {
		s.record(action, metrics.OutcomeNoop)
		return term, nil
	}
	if term.Status.IsTerminal() {
		s.record(action, metrics.OutcomeConflict)
		return nil, fmt.Errorf("term %s is %s: %w", term.ID, term.Status, domain.ErrConflict)
	}

	if target == domain.StatusApproved {
		if err := term.CheckApprovable(); err != nil {
			return nil, err
		}
	}

	updated, err := s.terms.UpdateByID(ctx, term.ID, domain.TermPatch{
		Status:    &target,
		UpdatedAt: s.now(),
	})
	if err != nil {
		s.record(action, metrics.OutcomeFailed)
		return nil, fmt.Errorf("update term: %w", err)
	}

	s.record(action, metrics.OutcomeApplied)
	if target == domain.StatusApproved {
		s.invalidateSearch(ctx)
	}

	s.log.InfoContext(ctx, "term "+target.String(),
		slog.String("term_id", term.ID.String()),
		slog.String("reviewer_id", reviewer.String()),
	)

	return updated, nil
}
