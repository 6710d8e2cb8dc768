package pubsub

import (
	"context"
	"testing"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/service"
	mockSvc "usersvc/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMailNotifier_Notify(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := NewCredentialNotifier(publisher, newDiscardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().PublishMailEvent(ctx, &service.MailEvent{
		RequestID: "req-42",
		To:        "test@gmail.com",
		Subject:   "Subject",
		Body:      "Body",
	}).Return(nil).Once()

	err := notifier.Notify(ctx, service.RecoveryMessage{To: "test@gmail.com", Subject: "Subject", Body: "Body"})

	require.NoError(t, err)
}

func TestMailNotifier_PublishFailure(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := NewCredentialNotifier(publisher, newDiscardLogger())
	boom := errors.New("queue down")

	publisher.EXPECT().PublishMailEvent(mock.Anything, mock.Anything).Return(boom)

	err := notifier.Notify(context.Background(), service.RecoveryMessage{To: "test@gmail.com"})

	assert.ErrorIs(t, err, boom)
}
