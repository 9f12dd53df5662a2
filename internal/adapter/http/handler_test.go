package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"courier/internal/core/domain"
	"courier/internal/core/port"
	"courier/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockNewsletter, http.Handler) {
	t.Helper()
	svc := mocks.NewMockNewsletter(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, h.Router()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSubscribeEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		Subscribe(mock.Anything, "a@example.com", "website").
		Return(domain.OutcomeSubscribed, nil)

	rec := do(t, h, http.MethodPost, "/newsletter/subscribe", `{"email":"a@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body["subscribed"] {
		t.Fatalf("body = %s, want {\"subscribed\":true}", rec.Body.String())
	}
}

func TestSubscribeEndpointInvalidEmail(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		Subscribe(mock.Anything, "nope", "website").
		Return(domain.Outcome(""), port.ErrInvalidEmail)

	rec := do(t, h, http.MethodPost, "/newsletter/subscribe", `{"email":"nope"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid email") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestSubscribeEndpointBadJSON(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(t, h, http.MethodPost, "/newsletter/subscribe", `{"email":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUnsubscribeEndpointIdempotent(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		Unsubscribe(mock.Anything, "gone@example.com", "").
		Return(domain.OutcomeAlreadyUnsubscribed, nil)

	rec := do(t, h, http.MethodPost, "/newsletter/unsubscribe", `{"email":"gone@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for idempotent unsubscribe", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "alreadyUnsubscribed") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestUnsubscribeEndpointSignedFlow(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		UnsubscribeSigned(mock.Anything, "a@example.com", "deadbeef", "spam").
		Return(domain.OutcomeUnsubscribed, nil)

	rec := do(t, h, http.MethodPost, "/newsletter/unsubscribe",
		`{"email":"a@example.com","token":"deadbeef","reason":"spam"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestUnsubscribeLinkEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		UnsubscribeSigned(mock.Anything, "a@example.com", "deadbeef", "").
		Return(domain.OutcomeUnsubscribed, nil)

	rec := do(t, h, http.MethodGet, "/newsletter/unsubscribe?email=a%40example.com&token=deadbeef", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestUnsubscribeLinkEndpointRejects(t *testing.T) {
	svc, h := newTestHandler(t)

	// missing parameters never reach the service
	rec := do(t, h, http.MethodGet, "/newsletter/unsubscribe?email=a%40example.com", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing token: status = %d, want 400", rec.Code)
	}

	svc.EXPECT().
		UnsubscribeSigned(mock.Anything, "a@example.com", "forged", "").
		Return(domain.Outcome(""), port.ErrInvalidToken)

	rec = do(t, h, http.MethodGet, "/newsletter/unsubscribe?email=a%40example.com&token=forged", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("forged token: status = %d, want 400", rec.Code)
	}
}

func TestListSubscribersEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		ListSubscribers(mock.Anything, domain.StatusUnsubscribed).
		Return([]domain.Subscriber{{Email: "x@example.com", Status: domain.StatusUnsubscribed, Source: "website"}}, nil)

	rec := do(t, h, http.MethodGet, "/admin/newsletter/subscribers?status=unsubscribed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var views []subscriberView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatal(err)
	}
	if len(views) != 1 || views[0].Email != "x@example.com" {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestListSubscribersEndpointBadStatus(t *testing.T) {
	_, h := newTestHandler(t)
	rec := do(t, h, http.MethodGet, "/admin/newsletter/subscribers?status=pending", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSendCampaignEndpoint(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		SendCampaign(mock.Anything, "Hi", "Body").
		Return(&port.CampaignReport{Subject: "Hi", RecipientCount: 3, Delivered: 3}, nil)

	rec := do(t, h, http.MethodPost, "/admin/newsletter/send", `{"subject":"Hi","content":"Body"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var report port.CampaignReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if report.RecipientCount != 3 || report.Delivered != 3 {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestSendCampaignEndpointErrors(t *testing.T) {
	svc, h := newTestHandler(t)

	svc.EXPECT().
		SendCampaign(mock.Anything, "", "Body").
		Return(nil, port.ErrInvalidCampaign)
	rec := do(t, h, http.MethodPost, "/admin/newsletter/send", `{"subject":"","content":"Body"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid campaign: status = %d, want 400", rec.Code)
	}

	svc.EXPECT().
		SendCampaign(mock.Anything, "Hi", "Body").
		Return(nil, port.ErrTransportAuth)
	rec = do(t, h, http.MethodPost, "/admin/newsletter/send", `{"subject":"Hi","content":"Body"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("auth failure: status = %d, want 502", rec.Code)
	}
}
