package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"courier/internal/config/configs"
	"courier/internal/core/domain"
	"courier/internal/core/port"
	"courier/internal/render"
	"courier/internal/token"
)

const defaultBackoffBase = 250 * time.Millisecond

// NewsletterService provides the business logic of the subscription
// lifecycle and campaign broadcast. It orchestrates the subscriber
// repository, token signer, renderer and mail transport to implement the
// port.Newsletter interface.
type NewsletterService struct {
	repo     port.SubscriberRepository
	sender   port.MailSender
	signer   *token.Signer
	renderer *render.Renderer
	logger   *slog.Logger

	publicURL      url.URL
	sendTimeout    time.Duration
	maxConcurrency int
	maxRetries     int

	// backoffBase is the first retry delay; each further attempt doubles
	// it. Tests shrink this to keep retry paths fast.
	backoffBase time.Duration
}

// NewNewsletterService creates the service. Mail and newsletter settings
// come in as the immutable configuration objects built once at startup.
func NewNewsletterService(
	repo port.SubscriberRepository,
	sender port.MailSender,
	signer *token.Signer,
	renderer *render.Renderer,
	logger *slog.Logger,
	mailCfg configs.Mail,
	nlCfg configs.Newsletter,
) *NewsletterService {
	concurrency := mailCfg.MaxConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sendTimeout := mailCfg.SendTimeout
	if sendTimeout <= 0 {
		sendTimeout = 15 * time.Second
	}
	return &NewsletterService{
		repo:           repo,
		sender:         sender,
		signer:         signer,
		renderer:       renderer,
		logger:         logger,
		publicURL:      nlCfg.PublicURL,
		sendTimeout:    sendTimeout,
		maxConcurrency: concurrency,
		maxRetries:     mailCfg.MaxRetries,
		backoffBase:    defaultBackoffBase,
	}
}

// Subscribe applies a subscribe intent for email. The address is
// canonicalized and syntax-checked before the store is touched; repeated
// calls are idempotent and distinguished only by the returned outcome.
func (s *NewsletterService) Subscribe(ctx context.Context, email, source string) (domain.Outcome, error) {
	email, err := canonicalEmail(email)
	if err != nil {
		return "", err
	}
	return s.repo.Apply(ctx, domain.Intent{
		Action: domain.ActionSubscribe,
		Email:  email,
		Source: source,
	})
}

// Unsubscribe applies an unsubscribe intent for email with an optional
// free-text reason. Unknown or already unsubscribed addresses are a no-op.
func (s *NewsletterService) Unsubscribe(ctx context.Context, email, reason string) (domain.Outcome, error) {
	email, err := canonicalEmail(email)
	if err != nil {
		return "", err
	}
	return s.repo.Apply(ctx, domain.Intent{
		Action: domain.ActionUnsubscribe,
		Email:  email,
		Reason: reason,
	})
}

// UnsubscribeSigned serves the one-click links embedded in campaign mail:
// it verifies the HMAC token for email before applying the unsubscribe. A
// signature mismatch fails with port.ErrInvalidToken and mutates nothing.
func (s *NewsletterService) UnsubscribeSigned(ctx context.Context, email, tok, reason string) (domain.Outcome, error) {
	email, err := canonicalEmail(email)
	if err != nil {
		return "", err
	}
	if !s.signer.Verify(email, tok) {
		return "", port.ErrInvalidToken
	}
	return s.repo.Apply(ctx, domain.Intent{
		Action: domain.ActionUnsubscribe,
		Email:  email,
		Reason: reason,
	})
}

// ListSubscribers returns all subscriber records in the given state.
func (s *NewsletterService) ListSubscribers(ctx context.Context, status domain.Status) ([]domain.Subscriber, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown subscriber status %q", status)
	}
	return s.repo.ListByStatus(ctx, status)
}

// SendCampaign broadcasts one subject/content pair to every address that is
// subscribed at the moment the snapshot is taken. Each recipient gets its
// own signed unsubscribe link and rendered body; dispatch failures are
// isolated per recipient and collected in the report. The first recipient
// is sent synchronously as a probe: a transport authentication failure
// there means every further send would fail too, so the whole campaign is
// aborted without a partial report.
func (s *NewsletterService) SendCampaign(ctx context.Context, subject, content string) (*port.CampaignReport, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(content) == "" {
		return nil, port.ErrInvalidCampaign
	}

	snapshot, err := s.repo.ListByStatus(ctx, domain.StatusSubscribed)
	if err != nil {
		return nil, fmt.Errorf("snapshot subscribers: %w", err)
	}

	report := &port.CampaignReport{
		ID:             uuid.New(),
		Subject:        subject,
		RecipientCount: len(snapshot),
		SentAt:         time.Now().UTC(),
	}
	if len(snapshot) == 0 {
		s.logger.Info("campaign has no recipients", slog.String("campaign_id", report.ID.String()))
		return report, nil
	}

	if err := s.dispatch(ctx, snapshot[0].Email, subject, content); err != nil {
		if errors.Is(err, port.ErrTransportAuth) {
			return nil, err
		}
		report.Failures = append(report.Failures, snapshot[0].Email)
		s.logger.Warn("campaign dispatch failed",
			slog.String("campaign_id", report.ID.String()),
			slog.String("email", snapshot[0].Email),
			slog.Any("error", err))
	} else {
		report.Delivered++
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		authErr error
	)
	sem := make(chan struct{}, s.maxConcurrency)
	for _, sub := range snapshot[1:] {
		wg.Add(1)
		sem <- struct{}{}
		go func(email string) {
			defer wg.Done()
			defer func() { <-sem }()

			err := s.dispatch(ctx, email, subject, content)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				report.Delivered++
				return
			}
			report.Failures = append(report.Failures, email)
			if errors.Is(err, port.ErrTransportAuth) && authErr == nil {
				// credentials are broken for everyone; stop wasting attempts
				authErr = err
				cancel()
			}
			s.logger.Warn("campaign dispatch failed",
				slog.String("campaign_id", report.ID.String()),
				slog.String("email", email),
				slog.Any("error", err))
		}(sub.Email)
	}
	wg.Wait()

	if authErr != nil && report.Delivered == 0 {
		return nil, authErr
	}

	sort.Strings(report.Failures)
	s.logger.Info("campaign sent",
		slog.String("campaign_id", report.ID.String()),
		slog.Int("recipients", report.RecipientCount),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", len(report.Failures)))
	return report, nil
}

// dispatch renders and sends the campaign to a single recipient, applying
// the per-dispatch timeout and a bounded retry with exponential backoff.
// Authentication failures are returned immediately; retrying them cannot
// succeed.
func (s *NewsletterService) dispatch(ctx context.Context, email, subject, content string) error {
	msg, err := s.renderer.Render(subject, content, s.unsubscribeURL(email))
	if err != nil {
		return err
	}
	out := port.OutboundEmail{
		To:       email,
		Subject:  subject,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
	}

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.backoffBase << (attempt - 1)):
			}
		}
		sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
		lastErr = s.sender.Send(sendCtx, out)
		cancel()
		if lastErr == nil || errors.Is(lastErr, port.ErrTransportAuth) {
			return lastErr
		}
	}
	return lastErr
}

// unsubscribeURL builds the fully qualified one-click link for email,
// carrying the address and its signed token as query parameters.
func (s *NewsletterService) unsubscribeURL(email string) string {
	u := s.publicURL
	u.Path = "/newsletter/unsubscribe"
	q := url.Values{}
	q.Set("email", email)
	q.Set("token", s.signer.Sign(email))
	u.RawQuery = q.Encode()
	return u.String()
}

// canonicalEmail lower-cases and trims the address, then checks its syntax.
// The canonical form is the store's natural key and the signer's input, so
// every entry point must go through here.
func canonicalEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !govalidator.IsEmail(email) {
		return "", fmt.Errorf("%w: %q", port.ErrInvalidEmail, email)
	}
	return email, nil
}
