package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// RequestLog tags each request with an ID (reusing the client's when sent)
// and writes one access log line after the handler returns.
func RequestLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rid := r.Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, rid)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("http access",
				"rid", rid,
				"method", r.Method,
				"path", r.URL.RequestURI(),
				"status", status,
				"latency", time.Since(start),
				"resp_bytes", ww.BytesWritten(),
				"ua", r.UserAgent(),
			)
		})
	}
}
