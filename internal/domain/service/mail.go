package service

import (
	"context"

	"usersvc/internal/errors"
)

// ErrUndeliverableMail marks a mail event that retrying can never deliver.
var ErrUndeliverableMail = errors.New("undeliverable mail message")

// RecoveryMessage is the mail handed to the user after a password recovery.
type RecoveryMessage struct {
	To      string
	Subject string
	Body    string
}

// CredentialNotifier delivers credential-related messages to the account's email.
type CredentialNotifier interface {
	Notify(ctx context.Context, msg RecoveryMessage) error
}

// MailEvent is the message carried through the queue to the mail worker.
type MailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes a mail event for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// Mailer sends a single mail message.
type Mailer interface {
	Send(ctx context.Context, event *MailEvent) error
}
