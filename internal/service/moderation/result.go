package moderation

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

// ApproveResult is the state after a suggestion approval.
type ApproveResult struct {
	Term       *domain.Term
	Suggestion *domain.Suggestion
	// Noop is true when the suggestion was already approved.
	Noop bool
}

// ItemFailure reports why one suggestion of a batch was not approved.
type ItemFailure struct {
	ID  uuid.UUID
	Err error
}

// BatchResult is the per-item outcome of ApproveAll plus the pending
// suggestions left after the batch.
type BatchResult struct {
	Approved []uuid.UUID
	Failed   []ItemFailure
	Pending  []domain.Suggestion
}

// EditResult holds the entities written by EditPendingEntity. Term is set for
// both plans; Suggestion only for the suggestion plan.
type EditResult struct {
	Term       *domain.Term
	Suggestion *domain.Suggestion
}

// Queue is the admin review set.
type Queue struct {
	Terms       []domain.Term
	Suggestions []domain.Suggestion
}
