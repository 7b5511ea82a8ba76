package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured browser origin to call the API with a
// bearer token. Preflight requests are answered here and never reach the
// routes.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.allowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
