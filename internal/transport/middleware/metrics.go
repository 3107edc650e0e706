package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	HTTPRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics records request count and latency per route pattern. It must wrap
// the ServeMux directly: the mux sets r.Pattern on the request it receives.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.HTTPRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
