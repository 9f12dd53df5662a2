package port

import "context"

// OutboundEmail is one fully rendered message addressed to a single
// recipient. Both body representations are provided; the transport decides
// what to do with them.
type OutboundEmail struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// MailSender dispatches a single rendered email through an external mail
// transport. Implementations must honour ctx cancellation and deadlines and
// return ErrTransportAuth (possibly wrapped) when the transport rejects the
// configured credentials, so the broadcast engine can distinguish a systemic
// failure from an ordinary per-recipient one.
type MailSender interface {
	Send(ctx context.Context, msg OutboundEmail) error
}
