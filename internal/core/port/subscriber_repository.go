package port

import (
	"context"

	"courier/internal/core/domain"
)

// SubscriberRepository defines the persistence layer for subscriber
// lifecycle records. It is an outbound port in hexagonal architecture.
//
// Implementations must guarantee that Apply is an atomic compare-and-set
// style read-modify-write per email: two concurrent calls for the same
// address are serialized and can never produce two divergent records, while
// calls for different addresses proceed independently. Records are never
// deleted, only transitioned.
type SubscriberRepository interface {
	// Apply runs the subscription state machine against the stored record
	// for in.Email (or its absence) and persists the result atomically. It
	// returns the outcome classification of the transition.
	Apply(ctx context.Context, in domain.Intent) (domain.Outcome, error)

	// ListByStatus returns all subscriber records currently in the given
	// lifecycle state, ordered by email. The broadcast engine uses it to
	// take its recipient snapshot; later lifecycle changes do not affect a
	// snapshot already taken.
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Subscriber, error)
}
