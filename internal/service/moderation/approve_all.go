package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/metrics"
)

// ApproveAll approves each listed suggestion independently. An empty list
// means every currently pending suggestion.
//
// Items run concurrently, bounded by the configured concurrency, and each
// keeps the term-then-suggestion write order. A failed item never rolls back
// another. When any item fails the returned error wraps
// domain.ErrPartialFailure and the result still lists every outcome together
// with the suggestions left pending. Pending is nil when the post-batch
// refresh fails; that failure is logged and never fails the batch.
func (s *Service) ApproveAll(ctx context.Context, ids []uuid.UUID) (*BatchResult, error) {
	reviewer, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	ids, err = s.normalizeBatch(ids)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		pending, err := s.suggestions.ListByStatus(ctx, domain.StatusPending)
		if err != nil {
			return nil, fmt.Errorf("list pending suggestions: %w", err)
		}
		if len(pending) > s.maxBatch {
			pending = pending[:s.maxBatch]
		}
		for _, p := range pending {
			ids = append(ids, p.ID)
		}
	}

	if s.metrics != nil {
		s.metrics.ApproveAllBatch(len(ids))
	}

	// Each goroutine owns one slot, so no locking is needed.
	outcomes := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			_, err := s.approveSuggestion(ctx, id, reviewer)
			outcomes[i] = err
			return nil
		})
	}
	_ = g.Wait()

	result := &BatchResult{
		Approved: []uuid.UUID{},
		Failed:   []ItemFailure{},
	}
	for i, id := range ids {
		if err := outcomes[i]; err != nil {
			result.Failed = append(result.Failed, ItemFailure{ID: id, Err: err})
			s.record(actionApproveAll, outcomeOf(err))
			s.log.WarnContext(ctx, "approve-all item failed",
				slog.String("suggestion_id", id.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Approved = append(result.Approved, id)
		s.record(actionApproveAll, metrics.OutcomeApplied)
	}

	if len(result.Approved) > 0 {
		s.invalidateSearch(ctx)
	}

	pending, err := s.suggestions.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.log.WarnContext(ctx, "approve-all: refresh pending suggestions",
			slog.String("error", err.Error()),
		)
	} else {
		result.Pending = pending
	}

	s.log.InfoContext(ctx, "approve-all finished",
		slog.Int("requested", len(ids)),
		slog.Int("approved", len(result.Approved)),
		slog.Int("failed", len(result.Failed)),
		slog.String("reviewer_id", reviewer.String()),
	)

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%w: %d of %d suggestions failed",
			domain.ErrPartialFailure, len(result.Failed), len(ids))
	}
	return result, nil
}

// normalizeBatch drops duplicate ids and enforces the batch size limit.
func (s *Service) normalizeBatch(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) > s.maxBatch {
		return nil, domain.NewValidationError("ids", fmt.Sprintf("max %d suggestions per batch", s.maxBatch))
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, domain.NewValidationError("ids", "must not contain empty ids")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
