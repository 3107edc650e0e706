package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/pkg/ctxutil"
)

type logInfoKey struct{}

// logInfo collects fields set by inner middleware. Auth runs inside Logger,
// so the user id cannot be read back from the outer request context.
type logInfo struct {
	userID uuid.UUID
}

func withLogInfo(ctx context.Context) (context.Context, *logInfo) {
	info := &logInfo{}
	return context.WithValue(ctx, logInfoKey{}, info), info
}

// annotateUser records the authenticated user for the request log line.
func annotateUser(ctx context.Context, id uuid.UUID) {
	if info, ok := ctx.Value(logInfoKey{}).(*logInfo); ok {
		info.userID = id
	}
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, user_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			ctx, info := withLogInfo(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			userID := info.userID
			if userID == uuid.Nil {
				userID, _ = ctxutil.UserIDFromCtx(ctx)
			}
			if userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
