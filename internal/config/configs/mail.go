package configs

import "time"

// Mail holds the outbound mail transport configuration. Credentials and
// sender identity are loaded once at startup and treated as immutable for
// the process lifetime; business logic receives them by reference and never
// reads the environment itself.
type Mail struct {
	// APIKey authenticates against the SendGrid v3 API.
	APIKey string `env:"SENDGRID_API_KEY"`
	// FromEmail is the sender address stamped on every campaign message.
	FromEmail string `env:"FROM_EMAIL"`
	// FromName is the human-readable sender name.
	FromName string `env:"FROM_NAME" envDefault:"Newsletter"`
	// SendTimeout bounds a single recipient dispatch so one unresponsive
	// attempt cannot stall the batch.
	SendTimeout time.Duration `env:"SEND_TIMEOUT" envDefault:"15s"`
	// MaxConcurrency caps how many dispatches run in flight at once, to
	// respect transport throughput limits.
	MaxConcurrency int `env:"MAX_CONCURRENCY" envDefault:"8"`
	// MaxRetries is the number of additional attempts per recipient after a
	// failed dispatch, with exponential backoff between attempts.
	MaxRetries int `env:"MAX_RETRIES" envDefault:"2"`
}
