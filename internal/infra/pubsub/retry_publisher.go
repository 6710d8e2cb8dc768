package pubsub

import (
	"context"
	"log/slog"
	"time"

	"usersvc/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
)

// retryingPublisher retries failed publishes with exponential backoff.
type retryingPublisher struct {
	next    service.EventPublisher
	retries uint64
	base    time.Duration
	logger  *slog.Logger
}

// NewRetryingPublisher decorates next so each publish is attempted up to
// retries+1 times.
func NewRetryingPublisher(next service.EventPublisher, retries uint64, base time.Duration, logger *slog.Logger) service.EventPublisher {
	return &retryingPublisher{
		next:    next,
		retries: retries,
		base:    base,
		logger:  logger,
	}
}

func (p *retryingPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	backoff := retry.WithMaxRetries(p.retries, retry.NewExponential(p.base))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := p.next.PublishMailEvent(ctx, event); err != nil {
			p.logger.Warn("Publish attempt failed",
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)

			return retry.RetryableError(err)
		}

		return nil
	})

	return errors.Wrapf(err, "publish failed after %d attempts", attempt)
}

func (p *retryingPublisher) Close() error {
	return p.next.Close()
}
