package pubsub

import (
	"context"
	"log/slog"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/service"

	"github.com/pkg/errors"
)

// mailNotifier delivers credential messages by queueing them for the mail worker.
type mailNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCredentialNotifier builds the CredentialNotifier backed by the event publisher.
func NewCredentialNotifier(publisher service.EventPublisher, logger *slog.Logger) service.CredentialNotifier {
	return &mailNotifier{publisher: publisher, logger: logger}
}

func (n *mailNotifier) Notify(ctx context.Context, msg service.RecoveryMessage) error {
	event := &service.MailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        msg.To,
		Subject:   msg.Subject,
		Body:      msg.Body,
	}

	if err := n.publisher.PublishMailEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to queue mail")
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("Mail queued", slog.String("to", msg.To))

	return nil
}
