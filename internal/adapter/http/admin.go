package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"courier/internal/core/domain"
)

type sendCampaignRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// subscriberView is the JSON shape of one subscriber record in admin
// listings. Pointer timestamps serialize as null while the corresponding
// transition has not happened.
type subscriberView struct {
	Email             string     `json:"email"`
	Status            string     `json:"status"`
	Source            string     `json:"source"`
	SubscribedAt      *time.Time `json:"subscribedAt,omitempty"`
	UnsubscribedAt    *time.Time `json:"unsubscribedAt,omitempty"`
	UnsubscribeReason *string    `json:"unsubscribeReason,omitempty"`
}

// handleListSubscribers returns the subscriber list filtered by the
// required `status` query parameter. An unknown status is HTTP 400.
// Authorization is handled by an external collaborator.
func (h *Handler) handleListSubscribers(w http.ResponseWriter, r *http.Request) {
	status := domain.Status(r.URL.Query().Get("status"))
	if !status.Valid() {
		http.Error(w, "status must be subscribed or unsubscribed", http.StatusBadRequest)
		return
	}
	subs, err := h.svc.ListSubscribers(r.Context(), status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	views := make([]subscriberView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, subscriberView{
			Email:             sub.Email,
			Status:            string(sub.Status),
			Source:            sub.Source,
			SubscribedAt:      sub.SubscribedAt,
			UnsubscribedAt:    sub.UnsubscribedAt,
			UnsubscribeReason: sub.UnsubscribeReason,
		})
	}
	h.writeJSON(w, http.StatusOK, views)
}

// handleSendCampaign executes one campaign broadcast and returns its
// report. Empty subject or content is HTTP 400 before any send attempt; a
// transport authentication failure is HTTP 502 with no partial report.
func (h *Handler) handleSendCampaign(w http.ResponseWriter, r *http.Request) {
	var req sendCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	report, err := h.svc.SendCampaign(r.Context(), req.Subject, req.Content)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
