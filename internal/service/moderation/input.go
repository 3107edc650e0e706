package moderation

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

const (
	maxTermLength        = 200
	maxDescriptionLength = 4000
	maxNotesLength       = 2000
)

// EntityRef identifies the pending entity targeted by an edit.
type EntityRef struct {
	Kind domain.EntityKind
	ID   uuid.UUID
}

// EditForm carries the admin's edit of a pending entity. For a suggestion
// only EnglishTerm and ArabicTerm are used.
type EditForm struct {
	EnglishTerm   string
	ArabicTerm    *string
	DescriptionEn *string
	DescriptionAr *string
	Category      *string
}

func (f EditForm) validate(kind domain.EntityKind) []domain.FieldError {
	var errs []domain.FieldError

	english := strings.TrimSpace(f.EnglishTerm)
	if english == "" {
		errs = append(errs, domain.FieldError{Field: "english_term", Message: "required"})
	} else if utf8.RuneCountInString(english) > maxTermLength {
		errs = append(errs, domain.FieldError{Field: "english_term", Message: "max 200 characters"})
	}

	arabic := ""
	if f.ArabicTerm != nil {
		arabic = strings.TrimSpace(*f.ArabicTerm)
	}
	if kind == domain.EntityKindSuggestion && arabic == "" {
		errs = append(errs, domain.FieldError{Field: "arabic_term", Message: "required"})
	}
	if utf8.RuneCountInString(arabic) > maxTermLength {
		errs = append(errs, domain.FieldError{Field: "arabic_term", Message: "max 200 characters"})
	}

	if f.DescriptionEn != nil && utf8.RuneCountInString(*f.DescriptionEn) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description_en", Message: "max 4000 characters"})
	}
	if f.DescriptionAr != nil && utf8.RuneCountInString(*f.DescriptionAr) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description_ar", Message: "max 4000 characters"})
	}

	return errs
}

func validateEdit(ref EntityRef, form EditForm) error {
	var errs []domain.FieldError

	if !ref.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be term or suggestion"})
	}
	if ref.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, form.validate(ref.Kind)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RejectSuggestionInput holds the parameters for rejecting a suggestion.
type RejectSuggestionInput struct {
	SuggestionID uuid.UUID
	AdminNotes   *string
}

// Validate checks all fields and collects all errors.
func (i RejectSuggestionInput) Validate() error {
	var errs []domain.FieldError
	if i.SuggestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "suggestion_id", Message: "required"})
	}
	if i.AdminNotes != nil && utf8.RuneCountInString(*i.AdminNotes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "admin_notes", Message: "max 2000 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError(field, "required")
	}
	return nil
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
