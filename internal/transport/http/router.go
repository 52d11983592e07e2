// Package httptransport is the thin HTTP layer. Handlers delegate to the
// processing pipeline without embedding business logic so transport concerns
// remain isolated.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all public endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestTime)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/applications", h.handleProcessApplication)

	return r
}
