// Package comment stores free-text feedback on terms. Comments are
// append-only and not moderated.
package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

const maxCommentLength = 2000

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Comment, error)
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
}

// Service provides comment operations.
type Service struct {
	comments commentRepo
	terms    termRepo
	log      *slog.Logger
}

// NewService creates a new comment Service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	terms termRepo,
) *Service {
	return &Service{
		comments: comments,
		terms:    terms,
		log:      log.With("service", "comment"),
	}
}
