package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"courier/internal/core/domain"
)

var (
	// ErrInvalidEmail rejects a malformed address before any store access.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidToken rejects a signed unsubscribe link whose signature does
	// not match; the request is treated as a no-op, not a crash.
	ErrInvalidToken = errors.New("invalid unsubscribe token")
	// ErrInvalidCampaign rejects an empty subject or content before any send
	// attempt.
	ErrInvalidCampaign = errors.New("invalid campaign")
	// ErrTransportAuth signals that the mail transport rejected the
	// configured credentials. It is the only condition that fails a whole
	// campaign instead of a single recipient.
	ErrTransportAuth = errors.New("mail transport authentication failed")
)

// Newsletter defines the business operations of the subscription and
// broadcast subsystem. This is the primary port into the application
// domain; the HTTP adapter and tests depend on it.
type Newsletter interface {
	// Subscribe applies a subscribe intent for email. Repeated calls are
	// idempotent and classified by the returned outcome. A malformed email
	// fails with ErrInvalidEmail before the store is touched.
	Subscribe(ctx context.Context, email, source string) (domain.Outcome, error)

	// Unsubscribe applies an unsubscribe intent for email, storing an
	// optional free-text reason. Unsubscribing an unknown or already
	// unsubscribed address is a no-op returning OutcomeAlreadyUnsubscribed.
	Unsubscribe(ctx context.Context, email, reason string) (domain.Outcome, error)

	// UnsubscribeSigned verifies the signed one-click token for email and,
	// on success, behaves like Unsubscribe. A signature mismatch fails with
	// ErrInvalidToken and mutates nothing.
	UnsubscribeSigned(ctx context.Context, email, token, reason string) (domain.Outcome, error)

	// ListSubscribers returns all subscriber records in the given state.
	ListSubscribers(ctx context.Context, status domain.Status) ([]domain.Subscriber, error)

	// SendCampaign broadcasts one subject/content pair to every currently
	// subscribed address. Per-recipient dispatch failures are recorded in
	// the report; the call itself fails only when no send is possible at
	// all (ErrInvalidCampaign, snapshot errors, ErrTransportAuth).
	SendCampaign(ctx context.Context, subject, content string) (*CampaignReport, error)
}

// CampaignReport summarises one executed broadcast. RecipientCount is the
// size of the snapshot taken at the start of the send; Delivered plus
// len(Failures) always equals RecipientCount.
type CampaignReport struct {
	ID             uuid.UUID `json:"id"`
	Subject        string    `json:"subject"`
	RecipientCount int       `json:"recipientCount"`
	Delivered      int       `json:"delivered"`
	Failures       []string  `json:"failures,omitempty"`
	SentAt         time.Time `json:"sentAt"`
}
