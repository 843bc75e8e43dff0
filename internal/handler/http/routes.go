package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/legacy/{slug}", h.getPage)
		r.Post("/api/webhooks", h.handleWebhook)
	})

	// session-scoped routes
	router.Group(func(r chi.Router) {
		r.Use(h.sessionAuth)

		r.Post("/api/legacy", h.createPage)
		r.Get("/api/legacy/check", h.checkPage)
		r.Put("/api/legacy/{slug}", h.updatePage)
		r.Delete("/api/legacy/{slug}", h.deletePage)
	})

	return router
}
