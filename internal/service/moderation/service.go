// Package moderation applies admin approve/reject/edit decisions to terms and
// suggestions. It keeps no state between calls: every decision is a sequence
// of store reads and writes.
package moderation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/config"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/metrics"
	"github.com/heartmarshall/ai-arabic-dictionary/pkg/ctxutil"
)

// Decision names used for logging and metrics.
const (
	actionApproveSuggestion = "approve_suggestion"
	actionRejectSuggestion  = "reject_suggestion"
	actionApproveTerm       = "approve_term"
	actionRejectTerm        = "reject_term"
	actionApproveAll        = "approve_all"
	actionEditPending       = "edit_pending"
)

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch domain.TermPatch) (*domain.Term, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Term, error)
	List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error)
}

type suggestionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch domain.SuggestionPatch) (*domain.Suggestion, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Suggestion, error)
}

type searchInvalidator interface {
	Invalidate(ctx context.Context) error
}

type decisionRecorder interface {
	ModerationDecision(action, outcome string)
	ApproveAllBatch(size int)
}

// Service is the moderation engine.
type Service struct {
	terms       termRepo
	suggestions suggestionRepo
	cache       searchInvalidator
	metrics     decisionRecorder
	concurrency int
	maxBatch    int
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new moderation Service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	suggestions suggestionRepo,
	cache searchInvalidator,
	metrics decisionRecorder,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		terms:       terms,
		suggestions: suggestions,
		cache:       cache,
		metrics:     metrics,
		concurrency: cfg.ApproveAllConcurrency,
		maxBatch:    cfg.ApproveAllMaxItems,
		log:         log.With("service", "moderation"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// requireAdmin returns the caller's id, or ErrUnauthorized for anonymous
// callers and ErrForbidden for authenticated non-admins.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// invalidateSearch drops cached search results after approved content changed.
// The decision is already persisted, so a cache failure is only logged.
func (s *Service) invalidateSearch(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "search cache invalidation failed", slog.String("error", err.Error()))
	}
}

func (s *Service) record(action, outcome string) {
	if s.metrics != nil {
		s.metrics.ModerationDecision(action, outcome)
	}
}

func outcomeOf(err error) string {
	if errors.Is(err, domain.ErrConflict) {
		return metrics.OutcomeConflict
	}
	return metrics.OutcomeFailed
}
