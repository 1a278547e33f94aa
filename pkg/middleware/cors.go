package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS allows credentialed requests from the given origins. Preflight
// requests are answered with 200.
func CORS(origins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", CorrelationIDHeader}),
		handlers.ExposedHeaders([]string{CorrelationIDHeader}),
		handlers.AllowCredentials(),
		handlers.OptionStatusCode(http.StatusOK),
	)
}
