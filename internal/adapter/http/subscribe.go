package httpadapter

import (
	"encoding/json"
	"net/http"

	"courier/internal/core/domain"
)

// defaultSource tags records created through the public subscribe endpoint
// when the caller does not name its own origin.
const defaultSource = "website"

type subscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type unsubscribeRequest struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
	// Token carries the signed unsubscribe credential when the request
	// comes from a mailed one-click link rather than the authenticated
	// admin surface.
	Token string `json:"token"`
}

// handleSubscribe applies a subscribe intent. The request body carries the
// email and an optional origin tag. The response is a single outcome key,
// e.g. {"subscribed":true}; a malformed address produces HTTP 400.
func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Source == "" {
		req.Source = defaultSource
	}
	out, err := h.svc.Subscribe(r.Context(), req.Email, req.Source)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOutcome(w, out)
}

// handleUnsubscribe applies an unsubscribe intent. When the body carries a
// token the signed-link flow is used and the token is verified first;
// otherwise the request is assumed to come through the authenticated
// surface in front of this service. Unsubscribing an address that is not
// subscribed succeeds with {"alreadyUnsubscribed":true}.
func (h *Handler) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	var req unsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	var (
		out domain.Outcome
		err error
	)
	if req.Token != "" {
		out, err = h.svc.UnsubscribeSigned(r.Context(), req.Email, req.Token, req.Reason)
	} else {
		out, err = h.svc.Unsubscribe(r.Context(), req.Email, req.Reason)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOutcome(w, out)
}

// handleUnsubscribeLink is the target of the one-click links embedded in
// campaign mail. Email and token arrive as query parameters; repeated
// clicks stay idempotent.
func (h *Handler) handleUnsubscribeLink(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	email := q.Get("email")
	token := q.Get("token")
	if email == "" || token == "" {
		http.Error(w, "missing email or token", http.StatusBadRequest)
		return
	}
	out, err := h.svc.UnsubscribeSigned(r.Context(), email, token, q.Get("reason"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeOutcome(w, out)
}
