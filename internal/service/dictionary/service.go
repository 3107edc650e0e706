// Package dictionary serves the public read side of the dictionary and
// accepts contributor submissions into the moderation queue.
package dictionary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/config"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error)
	Search(ctx context.Context, q string, limit int) ([]domain.Term, error)
	Create(ctx context.Context, t *domain.Term) (*domain.Term, error)
}

type suggestionRepo interface {
	Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)
}

type searchCache interface {
	GetOrLoad(ctx context.Context, query string, limit int, load func(ctx context.Context) ([]domain.Term, error)) ([]domain.Term, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements dictionary reads and contributor submissions.
type Service struct {
	log         *slog.Logger
	terms       termRepo
	suggestions suggestionRepo
	cache       searchCache
	tx          txManager
	cfg         config.SearchConfig
}

// NewService creates a new dictionary Service.
func NewService(
	logger *slog.Logger,
	terms termRepo,
	suggestions suggestionRepo,
	cache searchCache,
	tx txManager,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "dictionary"),
		terms:       terms,
		suggestions: suggestions,
		cache:       cache,
		tx:          tx,
		cfg:         cfg,
	}
}

// clampLimit maps 0 to the default page size and caps the rest at the maximum.
func (s *Service) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return s.cfg.DefaultLimit
	case limit > s.cfg.MaxLimit:
		return s.cfg.MaxLimit
	}
	return limit
}
