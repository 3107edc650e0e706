package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/pkg/ctxutil"
)

// AddComment attaches a comment to a visible term. Anonymous callers may
// comment; the author is recorded when known.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.visibleTerm(ctx, input.TermID); err != nil {
		return nil, err
	}

	var author *uuid.UUID
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		author = &userID
	}

	text := strings.TrimSpace(input.Text)
	created, err := s.comments.Create(ctx, &domain.Comment{
		TermID: input.TermID,
		UserID: author,
		Text:   text,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("comment_id", created.ID.String()),
		slog.String("term_id", input.TermID.String()),
		slog.Bool("anonymous", author == nil),
	)

	return created, nil
}

// ListComments returns a term's comments, newest first.
func (s *Service) ListComments(ctx context.Context, termID uuid.UUID) ([]domain.Comment, error) {
	if termID == uuid.Nil {
		return nil, domain.NewValidationError("term_id", "required")
	}

	if _, err := s.visibleTerm(ctx, termID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByTerm(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// visibleTerm loads the term, hiding unapproved terms from non-admins.
func (s *Service) visibleTerm(ctx context.Context, termID uuid.UUID) (*domain.Term, error) {
	term, err := s.terms.GetByID(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	if term.Status != domain.StatusApproved && !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("term %s: %w", termID, domain.ErrNotFound)
	}
	return term, nil
}
