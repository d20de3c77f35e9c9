// Package middleware holds HTTP middleware for the gateway.
package middleware

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/bloghub/internal/logging"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// responseWriter records the status code and body size of a response.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// AccessLog logs one line per request. 5xx responses are logged at error
// level, 4xx at warn.
func AccessLog(l logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", time.Since(start),
				"bytes", wrapped.written,
				"request_id", chimiddleware.GetReqID(r.Context()),
			}

			switch {
			case wrapped.statusCode >= http.StatusInternalServerError:
				l.Error(r.Context(), "request completed", args...)
			case wrapped.statusCode >= http.StatusBadRequest:
				l.Warn(r.Context(), "request completed", args...)
			default:
				l.Info(r.Context(), "request completed", args...)
			}
		})
	}
}
