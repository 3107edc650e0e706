package rest

import (
	"net/http"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/transport/middleware"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Health     *HealthHandler
	Dictionary *DictionaryHandler
	Admin      *AdminHandler
	Metrics    http.Handler

	// WriteLimit wraps contributor writes. Nil disables rate limiting.
	WriteLimit middleware.Middleware
}

// NewRouter registers every endpoint on a ServeMux. Admin routes are
// guarded by middleware.AdminOnly; identity itself is resolved by the
// Auth middleware outside the mux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	limit := rt.WriteLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	write := func(h http.HandlerFunc) http.Handler { return limit(h) }

	d := rt.Dictionary
	mux.HandleFunc("GET /api/terms", d.ListTerms)
	mux.HandleFunc("GET /api/terms/{id}", d.GetTerm)
	mux.Handle("POST /api/terms", write(d.SubmitTerm))
	mux.Handle("POST /api/terms/{id}/suggestions", write(d.SuggestTranslation))
	mux.Handle("POST /api/terms/{id}/edits", write(d.SuggestEdit))
	mux.HandleFunc("GET /api/terms/{id}/comments", d.ListComments)
	mux.Handle("POST /api/terms/{id}/comments", write(d.AddComment))

	a := rt.Admin
	admin := func(h http.HandlerFunc) http.Handler { return middleware.AdminOnly(h) }
	mux.Handle("GET /api/admin/queue", admin(a.Queue))
	mux.Handle("GET /api/admin/terms", admin(a.ListTerms))
	mux.Handle("POST /api/admin/suggestions/approve-all", admin(a.ApproveAll))
	mux.Handle("POST /api/admin/suggestions/{id}/approve", admin(a.ApproveSuggestion))
	mux.Handle("POST /api/admin/suggestions/{id}/reject", admin(a.RejectSuggestion))
	mux.Handle("POST /api/admin/terms/{id}/approve", admin(a.ApproveTerm))
	mux.Handle("POST /api/admin/terms/{id}/reject", admin(a.RejectTerm))
	mux.Handle("PUT /api/admin/pending/{kind}/{id}", admin(a.EditPending))

	return mux
}
