package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/pkg/ctxutil"
)

// SubmitTerm records a contributor's new term as pending.
func (s *Service) SubmitTerm(ctx context.Context, input SubmitTermInput) (*domain.Term, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	arabic := strings.TrimSpace(input.ArabicTerm)
	created, err := s.terms.Create(ctx, &domain.Term{
		EnglishTerm:   strings.TrimSpace(input.EnglishTerm),
		ArabicTerm:    &arabic,
		DescriptionEn: trimOrNil(input.DescriptionEn),
		DescriptionAr: trimOrNil(input.DescriptionAr),
		Category:      trimOrNil(input.Category),
		Status:        domain.StatusPending,
		CreatedBy:     &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create term: %w", err)
	}

	s.log.InfoContext(ctx, "term submitted",
		slog.String("term_id", created.ID.String()),
		slog.String("user_id", userID.String()),
	)
	return created, nil
}
