package dictionary

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

const (
	maxTermLength        = 200
	maxDescriptionLength = 4000
	maxCategoryLength    = 100
	maxReasonLength      = 2000
)

// SubmitTermInput holds a contributor's new term.
type SubmitTermInput struct {
	EnglishTerm   string
	ArabicTerm    string
	DescriptionEn *string
	DescriptionAr *string
	Category      *string
}

// Validate checks all fields and collects all errors.
func (i SubmitTermInput) Validate() error {
	var errs []domain.FieldError
	errs = appendTermText(errs, "english_term", i.EnglishTerm)
	errs = appendTermText(errs, "arabic_term", i.ArabicTerm)
	errs = appendOptional(errs, i.DescriptionEn, i.DescriptionAr, i.Category)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SuggestTranslationInput holds a proposed Arabic translation for a term.
type SuggestTranslationInput struct {
	TermID     uuid.UUID
	ArabicTerm string
	Reason     *string
}

// Validate checks all fields and collects all errors.
func (i SuggestTranslationInput) Validate() error {
	var errs []domain.FieldError
	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}
	errs = appendTermText(errs, "arabic_term", i.ArabicTerm)
	if i.Reason != nil && utf8.RuneCountInString(*i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SuggestEditInput holds the full edited form of a term. Only fields that
// differ from the stored term become part of the suggestion.
type SuggestEditInput struct {
	TermID        uuid.UUID
	EnglishTerm   string
	ArabicTerm    string
	DescriptionEn *string
	DescriptionAr *string
	Category      *string
	Reason        *string
}

// Validate checks all fields and collects all errors.
func (i SuggestEditInput) Validate() error {
	var errs []domain.FieldError
	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}
	errs = appendTermText(errs, "english_term", i.EnglishTerm)
	errs = appendTermText(errs, "arabic_term", i.ArabicTerm)
	errs = appendOptional(errs, i.DescriptionEn, i.DescriptionAr, i.Category)
	if i.Reason != nil && utf8.RuneCountInString(*i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendTermText(errs []domain.FieldError, field, value string) []domain.FieldError {
	v := strings.TrimSpace(value)
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(v) > maxTermLength:
		return append(errs, domain.FieldError{Field: field, Message: "max 200 characters"})
	}
	return errs
}

func appendOptional(errs []domain.FieldError, descEn, descAr, category *string) []domain.FieldError {
	if descEn != nil && utf8.RuneCountInString(*descEn) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description_en", Message: "max 4000 characters"})
	}
	if descAr != nil && utf8.RuneCountInString(*descAr) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description_ar", Message: "max 4000 characters"})
	}
	if category != nil && utf8.RuneCountInString(*category) > maxCategoryLength {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 100 characters"})
	}
	return errs
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
