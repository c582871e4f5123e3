package http

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the ingestion endpoints on the portal router. The
// simplified visit path sits directly under /eduPortal/log; the full
// pipeline and its statistics live under /eduPortal/tracking.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/eduPortal/log", h.LogSimpleEvent)
	r.Get("/eduPortal/ip", h.GetClientIP)
	r.Route("/eduPortal/tracking", func(r chi.Router) {
		r.Post("/log", h.LogEvent)
		r.Get("/stats", h.Stats)
	})
}
