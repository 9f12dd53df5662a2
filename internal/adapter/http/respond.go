package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"courier/internal/core/domain"
	"courier/internal/core/port"
)

// writeJSON encodes v as the response body. Encoding errors are logged;
// by then the status line is already written so nothing else can be done.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeOutcome reports a lifecycle outcome as a single-key object, e.g.
// {"resubscribed":true}. "Already in this state" is expected idempotent
// behaviour and gets the same 200 as a fresh transition.
func (h *Handler) writeOutcome(w http.ResponseWriter, out domain.Outcome) {
	h.writeJSON(w, http.StatusOK, map[string]bool{string(out): true})
}

// writeError maps the service error taxonomy onto HTTP statuses. Validation
// failures are the caller's fault; transport authentication failures mean
// the upstream mail provider rejected us; everything else is internal.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidEmail),
		errors.Is(err, port.ErrInvalidToken),
		errors.Is(err, port.ErrInvalidCampaign):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, port.ErrTransportAuth):
		h.logger.Error("mail transport rejected credentials", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, map[string]string{"error": "mail transport unavailable"})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
