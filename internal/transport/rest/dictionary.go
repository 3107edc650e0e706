package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/comment"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/dictionary"
)

type dictionaryService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Term, error)
	GetTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	ListApproved(ctx context.Context, limit, offset int) ([]domain.Term, error)
	SubmitTerm(ctx context.Context, input dictionary.SubmitTermInput) (*domain.Term, error)
	SuggestTranslation(ctx context.Context, input dictionary.SuggestTranslationInput) (*domain.Suggestion, error)
	SuggestEdit(ctx context.Context, input dictionary.SuggestEditInput) (*domain.Suggestion, error)
}

type commentService interface {
	AddComment(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, termID uuid.UUID) ([]domain.Comment, error)
}

// DictionaryHandler serves the public dictionary endpoints.
type DictionaryHandler struct {
	dict     dictionaryService
	comments commentService
	log      *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(dict dictionaryService, comments commentService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		dict:     dict,
		comments: comments,
		log:      logger.With("handler", "dictionary"),
	}
}

type submitTermRequest struct {
	EnglishTerm   string  `json:"english_term"`
	ArabicTerm    string  `json:"arabic_term"`
	DescriptionEn *string `json:"description_en"`
	DescriptionAr *string `json:"description_ar"`
	Category      *string `json:"category"`
}

type suggestTranslationRequest struct {
	ArabicTerm string  `json:"arabic_term"`
	Reason     *string `json:"reason"`
}

type suggestEditRequest struct {
	EnglishTerm   string  `json:"english_term"`
	ArabicTerm    string  `json:"arabic_term"`
	DescriptionEn *string `json:"description_en"`
	DescriptionAr *string `json:"description_ar"`
	Category      *string `json:"category"`
	Reason        *string `json:"reason"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

// ListTerms handles GET /api/terms. With q it searches approved terms,
// otherwise it pages through them.
func (h *DictionaryHandler) ListTerms(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var terms []domain.Term
	if q := r.URL.Query().Get("q"); q != "" {
		terms, err = h.dict.Search(r.Context(), q, limit)
	} else {
		var offset int
		if offset, err = queryInt(r, "offset"); err == nil {
			terms, err = h.dict.ListApproved(r.Context(), limit, offset)
		}
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermList(terms))
}

// GetTerm handles GET /api/terms/{id}.
func (h *DictionaryHandler) GetTerm(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	term, err := h.dict.GetTerm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// SubmitTerm handles POST /api/terms.
func (h *DictionaryHandler) SubmitTerm(w http.ResponseWriter, r *http.Request) {
	var req submitTermRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	term, err := h.dict.SubmitTerm(r.Context(), dictionary.SubmitTermInput{
		EnglishTerm:   req.EnglishTerm,
		ArabicTerm:    req.ArabicTerm,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Category:      req.Category,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTermResponse(term))
}

// SuggestTranslation handles POST /api/terms/{id}/suggestions.
func (h *DictionaryHandler) SuggestTranslation(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req suggestTranslationRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sug, err := h.dict.SuggestTranslation(r.Context(), dictionary.SuggestTranslationInput{
		TermID:     id,
		ArabicTerm: req.ArabicTerm,
		Reason:     req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSuggestionResponse(sug))
}

// SuggestEdit handles POST /api/terms/{id}/edits.
func (h *DictionaryHandler) SuggestEdit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req suggestEditRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sug, err := h.dict.SuggestEdit(r.Context(), dictionary.SuggestEditInput{
		TermID:        id,
		EnglishTerm:   req.EnglishTerm,
		ArabicTerm:    req.ArabicTerm,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Category:      req.Category,
		Reason:        req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSuggestionResponse(sug))
}

// ListComments handles GET /api/terms/{id}/comments.
func (h *DictionaryHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comments, err := h.comments.ListComments(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommentList(comments))
}

// AddComment handles POST /api/terms/{id}/comments.
func (h *DictionaryHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addCommentRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.comments.AddComment(r.Context(), comment.AddCommentInput{TermID: id, Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}
