// Package sendgrid implements the outbound mail port on the SendGrid v3
// API. It is a thin adapter: rendering and recipient selection happen in
// the usecase layer, this package only dispatches one message at a time.
package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"courier/internal/config/configs"
	"courier/internal/core/port"
)

// Sender dispatches rendered emails through SendGrid.
type Sender struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSender constructs a Sender from the mail configuration. The API key
// and sender address are required; without them every dispatch would fail.
func NewSender(cfg configs.Mail) (*Sender, error) {
	if cfg.APIKey == "" || cfg.FromEmail == "" {
		return nil, errors.New("sendgrid: api key and from address are required")
	}
	return &Sender{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
	}, nil
}

// Send dispatches one message. A 401 or 403 from the transport maps to
// port.ErrTransportAuth so the broadcast engine can abort the whole
// campaign; any other non-2xx status is an ordinary per-recipient failure.
func (s *Sender) Send(ctx context.Context, msg port.OutboundEmail) error {
	m := mail.NewSingleEmail(s.from, msg.Subject, mail.NewEmail("", msg.To), msg.TextBody, msg.HTMLBody)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", msg.To, err)
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("sendgrid returned %d: %w", resp.StatusCode, port.ErrTransportAuth)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("sendgrid send to %s: status %d: %s", msg.To, resp.StatusCode, resp.Body)
	}
	return nil
}
