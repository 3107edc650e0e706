package rest

import (
	"time"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

type termResponse struct {
	ID            string     `json:"id"`
	EnglishTerm   string     `json:"english_term"`
	ArabicTerm    *string    `json:"arabic_term"`
	DescriptionEn *string    `json:"description_en"`
	DescriptionAr *string    `json:"description_ar"`
	Category      *string    `json:"category"`
	Status        string     `json:"status"`
	CreatedBy     *string    `json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type suggestionResponse struct {
	ID                     string     `json:"id"`
	TermID                 string     `json:"term_id"`
	SuggestedEnglishTerm   *string    `json:"suggested_english_term,omitempty"`
	SuggestedArabicTerm    *string    `json:"suggested_arabic_term,omitempty"`
	SuggestedDescriptionEn *string    `json:"suggested_description_en,omitempty"`
	SuggestedDescriptionAr *string    `json:"suggested_description_ar,omitempty"`
	SuggestedCategory      *string    `json:"suggested_category,omitempty"`
	Reason                 *string    `json:"reason,omitempty"`
	Status                 string     `json:"status"`
	AdminNotes             *string    `json:"admin_notes,omitempty"`
	CreatedBy              *string    `json:"created_by,omitempty"`
	ReviewedBy             *string    `json:"reviewed_by,omitempty"`
	ReviewedAt             *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	TermID    string    `json:"term_id"`
	UserID    *string   `json:"user_id,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func toTermResponse(t *domain.Term) *termResponse {
	if t == nil {
		return nil
	}
	resp := &termResponse{
		ID:            t.ID.String(),
		EnglishTerm:   t.EnglishTerm,
		ArabicTerm:    t.ArabicTerm,
		DescriptionEn: t.DescriptionEn,
		DescriptionAr: t.DescriptionAr,
		Category:      t.Category,
		Status:        t.Status.String(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if t.CreatedBy != nil {
		s := t.CreatedBy.String()
		resp.CreatedBy = &s
	}
	return resp
}

func toTermList(terms []domain.Term) []*termResponse {
	out := make([]*termResponse, 0, len(terms))
	for i := range terms {
		out = append(out, toTermResponse(&terms[i]))
	}
	return out
}

func toSuggestionResponse(s *domain.Suggestion) *suggestionResponse {
	if s == nil {
		return nil
	}
	resp := &suggestionResponse{
		ID:                     s.ID.String(),
		TermID:                 s.TermID.String(),
		SuggestedEnglishTerm:   s.SuggestedEnglishTerm,
		SuggestedArabicTerm:    s.SuggestedArabicTerm,
		SuggestedDescriptionEn: s.SuggestedDescriptionEn,
		SuggestedDescriptionAr: s.SuggestedDescriptionAr,
		SuggestedCategory:      s.SuggestedCategory,
		Reason:                 s.Reason,
		Status:                 s.Status.String(),
		AdminNotes:             s.AdminNotes,
		ReviewedAt:             s.ReviewedAt,
		CreatedAt:              s.CreatedAt,
	}
	if s.CreatedBy != nil {
		v := s.CreatedBy.String()
		resp.CreatedBy = &v
	}
	if s.ReviewedBy != nil {
		v := s.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	return resp
}

func toSuggestionList(sugs []domain.Suggestion) []*suggestionResponse {
	out := make([]*suggestionResponse, 0, len(sugs))
	for i := range sugs {
		out = append(out, toSuggestionResponse(&sugs[i]))
	}
	return out
}

func toCommentList(comments []domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(&c))
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	resp := commentResponse{
		ID:        c.ID.String(),
		TermID:    c.TermID.String(),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
	if c.UserID != nil {
		v := c.UserID.String()
		resp.UserID = &v
	}
	return resp
}
