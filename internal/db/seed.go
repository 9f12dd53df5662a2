package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo subscriber records for local development. Existing
// records are left untouched so the seed is safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	now := time.Now().UTC()

	subscribed := []string{"ada@example.com", "brian@example.com", "carol@example.com"}
	for _, email := range subscribed {
		_, err := pool.Exec(ctx, `INSERT INTO subscribers
    (email, status, source, subscribed_at, created_at, updated_at)
VALUES ($1, 'subscribed', 'seed', $2, now(), now()) ON CONFLICT (email) DO NOTHING`,
			email, now)
		if err != nil {
			return fmt.Errorf("seed subscriber %s: %w", email, err)
		}
	}

	// one record that went through the full lifecycle and opted out again
	reason := "too many emails"
	_, err := pool.Exec(ctx, `INSERT INTO subscribers
    (email, status, source, subscribed_at, unsubscribed_at, unsubscribe_reason, created_at, updated_at)
VALUES ($1, 'unsubscribed', 'seed', $2, $3, $4, now(), now()) ON CONFLICT (email) DO NOTHING`,
		"dave@example.com", now.Add(-48*time.Hour), now, reason)
	if err != nil {
		return fmt.Errorf("seed unsubscribed record: %w", err)
	}
	return nil
}
