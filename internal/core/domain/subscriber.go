package domain

import "time"

// Status is the lifecycle state of a subscriber. An email address that has
// never been seen has no record at all; that implicit "unknown" state is
// represented by a nil *Subscriber.
type Status string

const (
	StatusSubscribed   Status = "subscribed"
	StatusUnsubscribed Status = "unsubscribed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	return s == StatusSubscribed || s == StatusUnsubscribed
}

// Subscriber is a single email address tracked through the subscription
// lifecycle. Email is the canonical, lower-cased natural key; ID is a
// storage-level synthetic key. Records are never deleted, only
// transitioned, so the history of an address survives resubscribes.
type Subscriber struct {
	ID                int64
	Email             string
	Status            Status
	Source            string
	SubscribedAt      *time.Time
	UnsubscribedAt    *time.Time
	UnsubscribeReason *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Action is a requested lifecycle transition.
type Action string

const (
	ActionSubscribe   Action = "subscribe"
	ActionUnsubscribe Action = "unsubscribe"
)

// Intent carries one subscribe or unsubscribe request for a single email.
// Source is only honoured on first subscribe; Reason only on unsubscribe.
type Intent struct {
	Action Action
	Email  string
	Source string
	Reason string
}

// Outcome classifies the result of applying an Intent. Repeating an intent
// the record already satisfies is not an error; it yields the corresponding
// "already" outcome.
type Outcome string

const (
	OutcomeSubscribed          Outcome = "subscribed"
	OutcomeResubscribed        Outcome = "resubscribed"
	OutcomeAlreadySubscribed   Outcome = "alreadySubscribed"
	OutcomeUnsubscribed        Outcome = "unsubscribed"
	OutcomeAlreadyUnsubscribed Outcome = "alreadyUnsubscribed"
)

// Changed reports whether the outcome mutated the record.
func (o Outcome) Changed() bool {
	return o == OutcomeSubscribed || o == OutcomeResubscribed || o == OutcomeUnsubscribed
}

// Apply runs the subscription state machine. current is the stored record
// for in.Email, or nil when the address has never been seen. It returns the
// record as it should be persisted and the outcome classification. A nil
// next record means nothing must be written: either the intent was a no-op
// on an existing record (the caller keeps it as is) or an unsubscribe for
// an unknown address, which must not create a record.
//
// Apply is pure; atomicity of the surrounding read-modify-write is the
// repository's responsibility.
func Apply(current *Subscriber, in Intent, now time.Time) (*Subscriber, Outcome) {
	switch in.Action {
	case ActionSubscribe:
		if current == nil {
			return &Subscriber{
				Email:        in.Email,
				Status:       StatusSubscribed,
				Source:       in.Source,
				SubscribedAt: &now,
			}, OutcomeSubscribed
		}
		if current.Status == StatusSubscribed {
			return nil, OutcomeAlreadySubscribed
		}
		next := *current
		next.Status = StatusSubscribed
		next.SubscribedAt = &now
		next.UnsubscribedAt = nil
		next.UnsubscribeReason = nil
		return &next, OutcomeResubscribed

	case ActionUnsubscribe:
		if current == nil || current.Status == StatusUnsubscribed {
			return nil, OutcomeAlreadyUnsubscribed
		}
		next := *current
		next.Status = StatusUnsubscribed
		next.UnsubscribedAt = &now
		if in.Reason != "" {
			reason := in.Reason
			next.UnsubscribeReason = &reason
		}
		return &next, OutcomeUnsubscribed
	}

	// Unknown actions are a programming error upstream; treat as no-op.
	return nil, OutcomeAlreadyUnsubscribed
}
