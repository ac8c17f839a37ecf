package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withMetrics,
		withSecurityHeaders,
		h.withJSONBody,
		h.withLogging,
		h.withCORS(),
		middleware.GetHead,
		h.withRecovery,
	)

	// a known path with an unregistered method is answered like an unknown path
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/", h.getStatus)
	router.Get("/health", h.getHealth)
	router.Get("/api/info", h.getInfo)
	router.Post("/api/mcp/ping", h.ping)

	return router
}
