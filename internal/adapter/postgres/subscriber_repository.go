package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"courier/internal/core/domain"
)

const (
	// pgErrUniqueViolation and pgErrSerializationFailure are the two
	// conditions a lost race between transactions surfaces as. Both are
	// safe to retry: the second attempt observes the row the winner wrote.
	pgErrUniqueViolation      = "23505"
	pgErrSerializationFailure = "40001"
	maxTransitionAttempts     = 3
)

// SubscriberRepository implements port.SubscriberRepository using pgxpool
// for PostgreSQL. Every transition runs in a serializable transaction that
// locks the subscriber row, so concurrent intents for one email are
// serialized while different emails proceed in parallel.
type SubscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository returns a new repository instance.
func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

// Apply runs the subscription state machine against the stored record for
// in.Email inside a single atomic read-modify-write. Two concurrent
// subscribes for an unseen address race on the insert; the loser hits the
// unique index or a serialization failure and retries against the row the
// winner created, so exactly one record per email ever exists.
func (r *SubscriberRepository) Apply(ctx context.Context, in domain.Intent) (domain.Outcome, error) {
	var (
		out domain.Outcome
		err error
	)
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		out, err = r.applyOnce(ctx, in)
		if err == nil || !retryable(err) {
			return out, err
		}
	}
	return "", fmt.Errorf("apply %s for %s: %w", in.Action, in.Email, err)
}

func (r *SubscriberRepository) applyOnce(ctx context.Context, in domain.Intent) (domain.Outcome, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// lock the row for this email, if it exists
	current, err := lockSubscriber(ctx, tx, in.Email)
	if err != nil {
		return "", err
	}

	next, outcome := domain.Apply(current, in, time.Now().UTC())
	if next == nil {
		// no-op transition, nothing to write
		return outcome, tx.Commit(ctx)
	}

	if current == nil {
		_, err = tx.Exec(ctx, `INSERT INTO subscribers
    (email, status, source, subscribed_at, unsubscribed_at, unsubscribe_reason, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now())`,
			next.Email, next.Status, next.Source, next.SubscribedAt, next.UnsubscribedAt, next.UnsubscribeReason)
	} else {
		_, err = tx.Exec(ctx, `UPDATE subscribers
SET status = $1, subscribed_at = $2, unsubscribed_at = $3, unsubscribe_reason = $4, updated_at = now()
WHERE id = $5`,
			next.Status, next.SubscribedAt, next.UnsubscribedAt, next.UnsubscribeReason, current.ID)
	}
	if err != nil {
		return "", err
	}
	// serialization conflicts can surface at commit, not just on the writes
	if err = tx.Commit(ctx); err != nil {
		return "", err
	}
	return outcome, nil
}

// lockSubscriber selects the record for email with FOR UPDATE. A missing
// record returns (nil, nil): the address has never been seen.
func lockSubscriber(ctx context.Context, tx pgx.Tx, email string) (*domain.Subscriber, error) {
	var (
		sub                          domain.Subscriber
		subscribedAt, unsubscribedAt *time.Time
		reason                       *string
	)
	err := tx.QueryRow(ctx, `SELECT id, email, status, source, subscribed_at, unsubscribed_at, unsubscribe_reason, created_at, updated_at
FROM subscribers WHERE email = $1 FOR UPDATE`, email).
		Scan(&sub.ID, &sub.Email, &sub.Status, &sub.Source, &subscribedAt, &unsubscribedAt, &reason, &sub.CreatedAt, &sub.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sub.SubscribedAt = subscribedAt
	sub.UnsubscribedAt = unsubscribedAt
	sub.UnsubscribeReason = reason
	return &sub, nil
}

// ListByStatus returns all subscriber records in the given state, ordered
// by email for stable listings and snapshots.
func (r *SubscriberRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Subscriber, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, email, status, source, subscribed_at, unsubscribed_at, unsubscribe_reason, created_at, updated_at
FROM subscribers WHERE status = $1 ORDER BY email`, status)
	if err != nil {
		return nil, err
	}
	subs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscriber, error) {
		var sub domain.Subscriber
		err := row.Scan(&sub.ID, &sub.Email, &sub.Status, &sub.Source,
			&sub.SubscribedAt, &sub.UnsubscribedAt, &sub.UnsubscribeReason,
			&sub.CreatedAt, &sub.UpdatedAt)
		return sub, err
	})
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUniqueViolation || pgErr.Code == pgErrSerializationFailure
	}
	return false
}
