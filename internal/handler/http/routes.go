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
	router.Use(withGZip)

	// one endpoint; the "op" form field selects the operation
	router.Get("/", h.dispatch)
	router.Post("/", h.dispatch)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
