package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withCORS, middleware.Recoverer)

	router.Get("/health", h.health)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Post("/users", h.createUser)
	router.Get("/users", h.listUsers)

	router.Get("/messages", h.listMessages)
	router.Post("/messages", h.sendMessage)
	router.Get("/messages/user/{id}", h.listInbox)
	router.Patch("/messages/{id}", h.updateMessage)
	router.Patch("/messages/{id}/read", h.markRead)
	router.Delete("/messages/{id}", h.deleteMessage)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
