package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"courier/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a Newsletter service to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router for
// convenient method handling. Authorization of the /admin subtree is the
// responsibility of an external collaborator in front of this service.
type Handler struct {
	svc    port.Newsletter
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// Newsletter implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.Newsletter, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/newsletter", func(r chi.Router) {
		r.Post("/subscribe", h.handleSubscribe)
		r.Post("/unsubscribe", h.handleUnsubscribe)
		r.Get("/unsubscribe", h.handleUnsubscribeLink)
	})
	r.Route("/admin/newsletter", func(r chi.Router) {
		r.Get("/subscribers", h.handleListSubscribers)
		r.Post("/send", h.handleSendCampaign)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
