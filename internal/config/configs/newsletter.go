package configs

import "net/url"

// Newsletter configures the subscription subsystem itself.
type Newsletter struct {
	// SigningSecret keys the HMAC signatures on unsubscribe tokens. It must
	// stay stable across deploys or previously mailed links stop verifying.
	SigningSecret string `env:"SIGNING_SECRET"`
	// PublicURL is the externally reachable base URL unsubscribe links are
	// built against.
	PublicURL url.URL `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
}
