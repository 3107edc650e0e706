package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/metrics"
)

// RejectSuggestion marks a pending suggestion rejected. The term is never
// touched. Rejecting an already rejected suggestion is a no-op.
func (s *Service) RejectSuggestion(ctx context.Context, input RejectSuggestionInput) (*domain.Suggestion, error) {
	reviewer, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sug, err := s.suggestions.GetByID(ctx, input.SuggestionID)
	if err != nil {
		s.record(actionRejectSuggestion, outcomeOf(err))
		return nil, fmt.Errorf("get suggestion: %w", err)
	}

	switch sug.Status {
	case domain.StatusRejected:
		s.record(actionRejectSuggestion, metrics.OutcomeNoop)
		return sug, nil
	case domain.StatusApproved:
		s.record(actionRejectSuggestion, metrics.OutcomeConflict)
		return nil, fmt.Errorf("suggestion %s is approved: %w", sug.ID, domain.ErrConflict)
	}

	rejected := domain.StatusRejected
	now := s.now()

	updated, err := s.suggestions.UpdateByID(ctx, sug.ID, domain.SuggestionPatch{
		Status:     &rejected,
		AdminNotes: trimOrNil(input.AdminNotes),
		ReviewedBy: &reviewer,
		ReviewedAt: &now,
	})
	if err != nil {
		s.record(actionRejectSuggestion, metrics.OutcomeFailed)
		return nil, fmt.Errorf("update suggestion: %w", err)
	}

	s.record(actionRejectSuggestion, metrics.OutcomeApplied)
	s.log.InfoContext(ctx, "suggestion rejected",
		slog.String("suggestion_id", sug.ID.String()),
		slog.String("reviewer_id", reviewer.String()),
	)

	return updated, nil
}
