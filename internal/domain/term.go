package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Term is a canonical English-Arabic dictionary entry with a moderation status.
type Term struct {
	ID            uuid.UUID
	EnglishTerm   string
	ArabicTerm    *string
	DescriptionEn *string
	DescriptionAr *string
	Category      *string
	Status        Status
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Arabic returns the Arabic text or an empty string.
func (t Term) Arabic() string {
	if t.ArabicTerm == nil {
		return ""
	}
	return *t.ArabicTerm
}

// CheckApprovable enforces the approved-term invariant: English and Arabic
// text must both be present.
func (t *Term) CheckApprovable() error {
	var errs []FieldError
	if strings.TrimSpace(t.EnglishTerm) == "" {
		errs = append(errs, FieldError{Field: "english_term", Message: "required for approval"})
	}
	if strings.TrimSpace(t.Arabic()) == "" {
		errs = append(errs, FieldError{Field: "arabic_term", Message: "required for approval"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Apply returns a copy of the term with the patch applied. UpdatedAt is set
// when the patch carries a timestamp.
func (t Term) Apply(p TermPatch) Term {
	if p.EnglishTerm != nil {
		t.EnglishTerm = *p.EnglishTerm
	}
	if p.ArabicTerm != nil {
		t.ArabicTerm = p.ArabicTerm
	}
	if p.DescriptionEn != nil {
		t.DescriptionEn = p.DescriptionEn
	}
	if p.DescriptionAr != nil {
		t.DescriptionAr = p.DescriptionAr
	}
	if p.Category != nil {
		t.Category = p.Category
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt
		t.UpdatedAt = &updated
	}
	return t
}

// TermPatch names the columns of a term to overwrite. Nil fields are left untouched.
type TermPatch struct {
	EnglishTerm   *string
	ArabicTerm    *string
	DescriptionEn *string
	DescriptionAr *string
	Category      *string
	Status        *Status
	UpdatedAt     time.Time
}

// IsEmpty reports whether the patch changes no content or status column.
func (p TermPatch) IsEmpty() bool {
	return p.EnglishTerm == nil && p.ArabicTerm == nil && p.DescriptionEn == nil &&
		p.DescriptionAr == nil && p.Category == nil && p.Status == nil
}

// Suggestion is a proposed change to exactly one term, awaiting moderation.
// Only the proposed fields are set; the change reason never leaks into the term.
type Suggestion struct {
	ID                     uuid.UUID
	TermID                 uuid.UUID
	SuggestedEnglishTerm   *string
	SuggestedArabicTerm    *string
	SuggestedDescriptionEn *string
	SuggestedDescriptionAr *string
	SuggestedCategory      *string
	Reason                 *string
	Status                 Status
	AdminNotes             *string
	CreatedBy              *uuid.UUID
	ReviewedBy             *uuid.UUID
	ReviewedAt             *time.Time
	CreatedAt              time.Time
}

// HasProposal reports whether at least one proposed field is non-empty.
func (s *Suggestion) HasProposal() bool {
	for _, f := range s.proposedFields() {
		if f != nil && strings.TrimSpace(*f) != "" {
			return true
		}
	}
	return false
}

func (s *Suggestion) proposedFields() []*string {
	return []*string{
		s.SuggestedEnglishTerm, s.SuggestedArabicTerm,
		s.SuggestedDescriptionEn, s.SuggestedDescriptionAr, s.SuggestedCategory,
	}
}

// TermPatch converts the non-empty proposed fields into a term patch.
func (s *Suggestion) TermPatch() TermPatch {
	return TermPatch{
		EnglishTerm:   nonEmpty(s.SuggestedEnglishTerm),
		ArabicTerm:    nonEmpty(s.SuggestedArabicTerm),
		DescriptionEn: nonEmpty(s.SuggestedDescriptionEn),
		DescriptionAr: nonEmpty(s.SuggestedDescriptionAr),
		Category:      nonEmpty(s.SuggestedCategory),
	}
}

// Apply returns a copy of the suggestion with the patch applied.
func (s Suggestion) Apply(p SuggestionPatch) Suggestion {
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.SuggestedEnglishTerm != nil {
		s.SuggestedEnglishTerm = p.SuggestedEnglishTerm
	}
	if p.SuggestedArabicTerm != nil {
		s.SuggestedArabicTerm = p.SuggestedArabicTerm
	}
	if p.AdminNotes != nil {
		s.AdminNotes = p.AdminNotes
	}
	if p.ReviewedBy != nil {
		s.ReviewedBy = p.ReviewedBy
	}
	if p.ReviewedAt != nil {
		s.ReviewedAt = p.ReviewedAt
	}
	return s
}

// SuggestionPatch names the mutable columns of a suggestion.
type SuggestionPatch struct {
	Status               *Status
	SuggestedEnglishTerm *string
	SuggestedArabicTerm  *string
	AdminNotes           *string
	ReviewedBy           *uuid.UUID
	ReviewedAt           *time.Time
}

// Comment is free-text feedback attached to a term. Append-only.
type Comment struct {
	ID        uuid.UUID
	TermID    uuid.UUID
	UserID    *uuid.UUID
	Text      string
	CreatedAt time.Time
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
