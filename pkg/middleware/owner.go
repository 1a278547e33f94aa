package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"worldinsight/pkg/claims"
)

// RequireOwner admits the request only when the identity field of the
// verified claims equals the muxVar path parameter. It must run after
// CheckJWT in Required mode.
func RequireOwner(field, muxVar string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := claims.FromContext(r.Context())
			if !ok {
				writeMessage(w, http.StatusUnauthorized, MsgUnauthorized)
				return
			}

			scope := mux.Vars(r)[muxVar]
			if !c.Owns(field, scope) {
				logger.Info("ownership denied",
					"path", r.URL.Path,
					"field", field,
					"correlation_id", CorrelationID(r.Context()),
				)
				writeMessage(w, http.StatusForbidden, MsgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
