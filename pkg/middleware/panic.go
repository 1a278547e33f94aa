package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

func Panic(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"panic", err,
						"path", r.URL.Path,
						"correlation_id", CorrelationID(r.Context()),
						"stack", string(debug.Stack()),
					)
					writeMessage(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
