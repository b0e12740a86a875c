// Package mail composes order emails and delivers them through a
// transactional email provider.
package mail

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned by senders that were built without provider credentials.
var ErrMissingAPIKey = errors.New("email provider API key is not configured")

// Message is one email handed to the provider.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender delivers a single message. Implementations return an error when the
// provider rejects the message or cannot be reached.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
