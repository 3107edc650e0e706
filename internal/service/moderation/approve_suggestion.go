package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/metrics"
)

// ApproveSuggestion applies a pending suggestion's proposed fields to its
// term, marks the term approved, then marks the suggestion approved.
//
// The suggestion is written only after the term write succeeded, so a
// failure leaves it pending and the call can be retried. Approving an
// already approved suggestion returns the current state unchanged.
func (s *Service) ApproveSuggestion(ctx context.Context, suggestionID uuid.UUID) (*ApproveResult, error) {
	reviewer, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateID("suggestion_id", suggestionID); err != nil {
		return nil, err
	}

	result, err := s.approveSuggestion(ctx, suggestionID, reviewer)
	if err != nil {
		s.record(actionApproveSuggestion, outcomeOf(err))
		return nil, err
	}

	if result.Noop {
		s.record(actionApproveSuggestion, metrics.OutcomeNoop)
		return result, nil
	}

	s.record(actionApproveSuggestion, metrics.OutcomeApplied)
	s.invalidateSearch(ctx)

	s.log.InfoContext(ctx, "suggestion approved",
		slog.String("suggestion_id", suggestionID.String()),
		slog.String("term_id", result.Term.ID.String()),
		slog.String("reviewer_id", reviewer.String()),
	)

	return result, nil
}

// approveSuggestion runs the ordered two-step write shared by
// ApproveSuggestion and ApproveAll.
func (s *Service) approveSuggestion(ctx context.Context, suggestionID, reviewer uuid.UUID) (*ApproveResult, error) {
	sug, err := s.suggestions.GetByID(ctx, suggestionID)
	if err != nil {
		return nil, fmt.Errorf("get suggestion: %w", err)
	}

	switch sug.Status {
	case domain.StatusApproved:
		term, err := s.terms.GetByID(ctx, sug.TermID)
		if err != nil {
			return nil, fmt.Errorf("get term: %w", err)
		}
		return &ApproveResult{Term: term, Suggestion: sug, Noop: true}, nil
	case domain.StatusRejected:
		return nil, fmt.Errorf("suggestion %s is rejected: %w", suggestionID, domain.ErrConflict)
	}

	term, err := s.terms.GetByID(ctx, sug.TermID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	if term.Status == domain.StatusRejected {
		return nil, fmt.Errorf("term %s is rejected: %w", term.ID, domain.ErrConflict)
	}

	approved := domain.StatusApproved
	now := s.now()

	patch := sug.TermPatch()
	patch.Status = &approved
	patch.UpdatedAt = now

	preview := term.Apply(patch)
	if err := preview.CheckApprovable(); err != nil {
		return nil, err
	}

	updatedTerm, err := s.terms.UpdateByID(ctx, term.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update term: %w", err)
	}

	updatedSug, err := s.suggestions.UpdateByID(ctx, sug.ID, domain.SuggestionPatch{
		Status:     &approved,
		ReviewedBy: &reviewer,
		ReviewedAt: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("update suggestion: %w", err)
	}

	return &ApproveResult{Term: updatedTerm, Suggestion: updatedSug}, nil
}
