package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers messages through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
	apiKey string
	logger *slog.Logger
}

// NewResendSender creates a sender for the given API key. baseURL overrides the
// API endpoint when non-empty. An empty apiKey is accepted; Send then fails with
// ErrMissingAPIKey so the problem is reported per request.
func NewResendSender(apiKey, baseURL string, logger *slog.Logger) (*ResendSender, error) {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse resend base url: %w", err)
		}
		client.BaseURL = u
	}

	return &ResendSender{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}, nil
}

// Send posts the message to the provider's send endpoint.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if s.apiKey == "" {
		return ErrMissingAPIKey
	}

	resp, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug("email accepted by provider", "provider_id", resp.Id, "subject", msg.Subject)
	return nil
}

// Configured reports whether the sender holds an API key.
func (s *ResendSender) Configured() bool {
	return s.apiKey != ""
}
