package comment

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

// AddCommentInput holds the parameters for commenting on a term.
type AddCommentInput struct {
	TermID uuid.UUID
	Text   string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
