package middleware

import (
	"net/http"

	"github.com/heartmarshall/ai-arabic-dictionary/pkg/ctxutil"
)

// AdminOnly guards the admin API. Anonymous callers get 401 and
// authenticated non-admins get 403. Services repeat the check.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
