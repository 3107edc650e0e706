package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/pkg/ctxutil"
)

// SuggestTranslation proposes an Arabic translation for an existing term.
func (s *Service) SuggestTranslation(ctx context.Context, input SuggestTranslationInput) (*domain.Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	arabic := strings.TrimSpace(input.ArabicTerm)
	return s.createSuggestion(ctx, input.TermID, func(*domain.Term) (*domain.Suggestion, error) {
		return &domain.Suggestion{
			TermID:              input.TermID,
			SuggestedArabicTerm: &arabic,
			Reason:              trimOrNil(input.Reason),
			CreatedBy:           &userID,
		}, nil
	})
}

// SuggestEdit proposes changes to an existing term. Only the fields that
// differ from the stored term are proposed; an edit that changes nothing is a
// validation error. The change reason stays on the suggestion.
func (s *Service) SuggestEdit(ctx context.Context, input SuggestEditInput) (*domain.Suggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.createSuggestion(ctx, input.TermID, func(term *domain.Term) (*domain.Suggestion, error) {
		sug := &domain.Suggestion{
			TermID:                 input.TermID,
			SuggestedEnglishTerm:   changed(term.EnglishTerm, &input.EnglishTerm),
			SuggestedArabicTerm:    changed(term.Arabic(), &input.ArabicTerm),
			SuggestedDescriptionEn: changed(deref(term.DescriptionEn), input.DescriptionEn),
			SuggestedDescriptionAr: changed(deref(term.DescriptionAr), input.DescriptionAr),
			SuggestedCategory:      changed(deref(term.Category), input.Category),
			Reason:                 trimOrNil(input.Reason),
			CreatedBy:              &userID,
		}
		if !sug.HasProposal() {
			return nil, domain.NewValidationError("changes", "no changes")
		}
		return sug, nil
	})
}

// createSuggestion loads the target term and inserts the suggestion built
// from it in one transaction, so the term cannot vanish in between.
func (s *Service) createSuggestion(
	ctx context.Context,
	termID uuid.UUID,
	build func(term *domain.Term) (*domain.Suggestion, error),
) (*domain.Suggestion, error) {
	var created *domain.Suggestion
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		term, err := s.terms.GetByID(txCtx, termID)
		if err != nil {
			return fmt.Errorf("get term: %w", err)
		}
		if term.Status == domain.StatusRejected {
			return fmt.Errorf("term %s is rejected: %w", termID, domain.ErrConflict)
		}

		sug, err := build(term)
		if err != nil {
			return err
		}

		created, err = s.suggestions.Create(txCtx, sug)
		if err != nil {
			return fmt.Errorf("create suggestion: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "suggestion submitted",
		slog.String("suggestion_id", created.ID.String()),
		slog.String("term_id", termID.String()),
	)
	return created, nil
}

// changed returns the trimmed proposal when it is non-empty and differs from
// current.
func changed(current string, proposed *string) *string {
	p := trimOrNil(proposed)
	if p == nil || *p == strings.TrimSpace(current) {
		return nil
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
