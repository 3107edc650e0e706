package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/metrics"
)

// EditPendingEntity corrects a pending entity before a decision is made.
//
// For a term the form overwrites its fields directly. For a suggestion the
// term's English text is updated only when the form changes it, then the
// suggestion's proposed Arabic text is replaced. Both plans are idempotent.
func (s *Service) EditPendingEntity(ctx context.Context, ref EntityRef, form EditForm) (*EditResult, error) {
	reviewer, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateEdit(ref, form); err != nil {
		return nil, err
	}

	var (
		result      *EditResult
		termChanged bool
	)
	switch ref.Kind {
	case domain.EntityKindTerm:
		result, err = s.editPendingTerm(ctx, ref, form)
		termChanged = err == nil
	case domain.EntityKindSuggestion:
		result, termChanged, err = s.editPendingSuggestion(ctx, ref, form)
	}
	if err != nil {
		s.record(actionEditPending, outcomeOf(err))
		return nil, err
	}

	s.record(actionEditPending, metrics.OutcomeApplied)
	if termChanged && result.Term.Status == domain.StatusApproved {
		s.invalidateSearch(ctx)
	}

	s.log.InfoContext(ctx, "pending entity edited",
		slog.String("kind", ref.Kind.String()),
		slog.String("id", ref.ID.String()),
		slog.String("reviewer_id", reviewer.String()),
	)

	return result, nil
}

func (s *Service) editPendingTerm(ctx context.Context, ref EntityRef, form EditForm) (*EditResult, error) {
	term, err := s.terms.GetByID(ctx, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	if term.Status != domain.StatusPending {
		return nil, fmt.Errorf("term %s is %s: %w", term.ID, term.Status, domain.ErrConflict)
	}

	english := strings.TrimSpace(form.EnglishTerm)
	updated, err := s.terms.UpdateByID(ctx, term.ID, domain.TermPatch{
		EnglishTerm:   &english,
		ArabicTerm:    trimmed(form.ArabicTerm),
		DescriptionEn: trimmed(form.DescriptionEn),
		DescriptionAr: trimmed(form.DescriptionAr),
		Category:      trimmed(form.Category),
		UpdatedAt:     s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("update term: %w", err)
	}

	return &EditResult{Term: updated}, nil
}

func (s *Service) editPendingSuggestion(ctx context.Context, ref EntityRef, form EditForm) (*EditResult, bool, error) {
	sug, err := s.suggestions.GetByID(ctx, ref.ID)
	if err != nil {
		return nil, false, fmt.Errorf("get suggestion: %w", err)
	}
	if sug.Status != domain.StatusPending {
		return nil, false, fmt.Errorf("suggestion %s is %s: %w", sug.ID, sug.Status, domain.ErrConflict)
	}

	term, err := s.terms.GetByID(ctx, sug.TermID)
	if err != nil {
		return nil, false, fmt.Errorf("get term: %w", err)
	}

	termChanged := false
	english := strings.TrimSpace(form.EnglishTerm)
	if english != term.EnglishTerm {
		term, err = s.terms.UpdateByID(ctx, term.ID, domain.TermPatch{
			EnglishTerm: &english,
			UpdatedAt:   s.now(),
		})
		if err != nil {
			return nil, false, fmt.Errorf("update term: %w", err)
		}
		termChanged = true
	}

	patch := domain.SuggestionPatch{SuggestedArabicTerm: trimmed(form.ArabicTerm)}
	// A proposed English text would overwrite the correction on approval.
	if p := sug.SuggestedEnglishTerm; p != nil && strings.TrimSpace(*p) != "" && *p != english {
		patch.SuggestedEnglishTerm = &english
	}

	updated, err := s.suggestions.UpdateByID(ctx, sug.ID, patch)
	if err != nil {
		return nil, termChanged, fmt.Errorf("update suggestion: %w", err)
	}

	return &EditResult{Term: term, Suggestion: updated}, termChanged, nil
}

// trimmed trims s but, unlike trimOrNil, keeps an explicit empty value so a
// field can be cleared.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
