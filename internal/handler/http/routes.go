package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/health", h.health)

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/verify", h.verify)
	})

	// routes with authorization
	router.Route("/api/study", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/process", h.process)
		r.Post("/process-file", h.processFile)
		r.Get("/history", h.history)
		r.Get("/session/{id}", h.session)
		r.Get("/stats", h.stats)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
