package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/moderation"
)

type moderationService interface {
	PendingQueue(ctx context.Context) (*moderation.Queue, error)
	ListTerms(ctx context.Context, status *domain.Status, limit, offset int) ([]domain.Term, error)
	ApproveSuggestion(ctx context.Context, suggestionID uuid.UUID) (*moderation.ApproveResult, error)
	RejectSuggestion(ctx context.Context, input moderation.RejectSuggestionInput) (*domain.Suggestion, error)
	ApprovePendingTerm(ctx context.Context, termID uuid.UUID) (*domain.Term, error)
	RejectPendingTerm(ctx context.Context, termID uuid.UUID) (*domain.Term, error)
	ApproveAll(ctx context.Context, ids []uuid.UUID) (*moderation.BatchResult, error)
	EditPendingEntity(ctx context.Context, ref moderation.EntityRef, form moderation.EditForm) (*moderation.EditResult, error)
}

// AdminHandler serves the moderation endpoints.
type AdminHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc: svc,
		log: logger.With("handler", "admin"),
	}
}

type queueResponse struct {
	Terms       []*termResponse       `json:"terms"`
	Suggestions []*suggestionResponse `json:"suggestions"`
}

type approveSuggestionResponse struct {
	Term       *termResponse       `json:"term"`
	Suggestion *suggestionResponse `json:"suggestion"`
	Noop       bool                `json:"noop"`
}

type rejectSuggestionRequest struct {
	AdminNotes *string `json:"admin_notes"`
}

type approveAllRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type itemFailureResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type approveAllResponse struct {
	Approved []string              `json:"approved"`
	Failed   []itemFailureResponse `json:"failed"`
	Pending  []*suggestionResponse `json:"pending"`
}

type editPendingRequest struct {
	EnglishTerm   string  `json:"english_term"`
	ArabicTerm    *string `json:"arabic_term"`
	DescriptionEn *string `json:"description_en"`
	DescriptionAr *string `json:"description_ar"`
	Category      *string `json:"category"`
}

type editPendingResponse struct {
	Term       *termResponse       `json:"term"`
	Suggestion *suggestionResponse `json:"suggestion,omitempty"`
}

// Queue handles GET /api/admin/queue.
func (h *AdminHandler) Queue(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.PendingQueue(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, queueResponse{
		Terms:       toTermList(q.Terms),
		Suggestions: toSuggestionList(q.Suggestions),
	})
}

// ListTerms handles GET /api/admin/terms?status=&limit=&offset=.
func (h *AdminHandler) ListTerms(w http.ResponseWriter, r *http.Request) {
	var status *domain.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.Status(v)
		status = &s
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	terms, err := h.svc.ListTerms(r.Context(), status, limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermList(terms))
}

// ApproveSuggestion handles POST /api/admin/suggestions/{id}/approve.
func (h *AdminHandler) ApproveSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ApproveSuggestion(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, approveSuggestionResponse{
		Term:       toTermResponse(res.Term),
		Suggestion: toSuggestionResponse(res.Suggestion),
		Noop:       res.Noop,
	})
}

// RejectSuggestion handles POST /api/admin/suggestions/{id}/reject.
func (h *AdminHandler) RejectSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req rejectSuggestionRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sug, err := h.svc.RejectSuggestion(r.Context(), moderation.RejectSuggestionInput{
		SuggestionID: id,
		AdminNotes:   req.AdminNotes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionResponse(sug))
}

// ApproveAll handles POST /api/admin/suggestions/approve-all. A partial
// failure answers 207 with the per-item outcome.
func (h *AdminHandler) ApproveAll(w http.ResponseWriter, r *http.Request) {
	var req approveAllRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ApproveAll(r.Context(), req.IDs)
	status := http.StatusOK
	if err != nil {
		if res == nil || !errors.Is(err, domain.ErrPartialFailure) {
			handleError(h.log, w, r, err)
			return
		}
		status = http.StatusMultiStatus
	}

	resp := approveAllResponse{
		Approved: make([]string, 0, len(res.Approved)),
		Failed:   make([]itemFailureResponse, 0, len(res.Failed)),
		Pending:  toSuggestionList(res.Pending),
	}
	for _, id := range res.Approved {
		resp.Approved = append(resp.Approved, id.String())
	}
	for _, f := range res.Failed {
		resp.Failed = append(resp.Failed, itemFailureResponse{ID: f.ID.String(), Error: errorCode(f.Err)})
	}

	writeJSON(w, status, resp)
}

// ApproveTerm handles POST /api/admin/terms/{id}/approve.
func (h *AdminHandler) ApproveTerm(w http.ResponseWriter, r *http.Request) {
	h.decideTerm(w, r, h.svc.ApprovePendingTerm)
}

// RejectTerm handles POST /api/admin/terms/{id}/reject.
func (h *AdminHandler) RejectTerm(w http.ResponseWriter, r *http.Request) {
	h.decideTerm(w, r, h.svc.RejectPendingTerm)
}

func (h *AdminHandler) decideTerm(
	w http.ResponseWriter,
	r *http.Request,
	decide func(ctx context.Context, id uuid.UUID) (*domain.Term, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	term, err := decide(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// EditPending handles PUT /api/admin/pending/{kind}/{id}.
func (h *AdminHandler) EditPending(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req editPendingRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.EditPendingEntity(r.Context(),
		moderation.EntityRef{Kind: domain.EntityKind(r.PathValue("kind")), ID: id},
		moderation.EditForm{
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

	writeJSON(w, http.StatusOK, editPendingResponse{
		Term:       toTermResponse(res.Term),
		Suggestion: toSuggestionResponse(res.Suggestion),
	})
}
