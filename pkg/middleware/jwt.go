package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"worldinsight/pkg/claims"
	"worldinsight/pkg/session"
)

const (
	MsgUnauthorized = "Unauthorized access"
	MsgForbidden    = "forbidden access"
)

type Mode int

const (
	// Required rejects requests without a valid session token.
	Required Mode = iota
	// Optional lets anonymous requests through but still rejects a token
	// that fails verification.
	Optional
)

type Verifier interface {
	FromRequest(r *http.Request) (*claims.Claims, error)
}

// CheckJWT verifies the session cookie and attaches the decoded claims to
// the request context before calling next.
func CheckJWT(sessions Verifier, logger *slog.Logger, mode Mode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := sessions.FromRequest(r)
			switch {
			case errors.Is(err, session.ErrNoToken):
				if mode == Optional {
					next.ServeHTTP(w, r)
					return
				}
				writeMessage(w, http.StatusUnauthorized, MsgUnauthorized)
				return
			case err != nil:
				logger.Warn("token verification failed",
					"path", r.URL.Path,
					"correlation_id", CorrelationID(r.Context()),
					"error", err,
				)
				writeMessage(w, http.StatusUnauthorized, MsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(claims.NewContext(r.Context(), c)))
		})
	}
}
