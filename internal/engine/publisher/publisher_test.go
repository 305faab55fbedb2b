package publisher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports/mocks"
	"go.trai.ch/relay/internal/engine/publisher"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish_Command(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockMessenger(ctrl)
	p := publisher.New(messenger, 0)

	messenger.EXPECT().Publish(gomock.Any(), "set-policy", "policy").Return(nil)

	reply, err := p.Publish(context.Background(), "set-policy", "policy", false)
	require.NoError(t, err)
	assert.Nil(t, reply)
}

func TestPublisher_Publish_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockMessenger(ctrl)
	p := publisher.New(messenger, 5*time.Second)

	gomock.InOrder(
		messenger.EXPECT().Publish(gomock.Any(), "get-instance-status", "GetInstanceStatus").Return(nil),
		messenger.EXPECT().Receive(gomock.Any(), "get-instance-status-reply", 5*time.Second).Return("<status/>", nil),
	)

	reply, err := p.Publish(context.Background(), "get-instance-status", "GetInstanceStatus", true)
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, "<status/>", *reply)
}

func TestPublisher_Publish_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockMessenger(ctrl)
	p := publisher.New(messenger, 0)

	messenger.EXPECT().Publish(gomock.Any(), "c", "v").Return(errors.New("connection refused"))

	_, err := p.Publish(context.Background(), "c", "v", true)
	require.ErrorIs(t, err, domain.ErrMessaging)
}

func TestPublisher_Publish_ReplyTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockMessenger(ctrl)
	p := publisher.New(messenger, time.Second)

	messenger.EXPECT().Publish(gomock.Any(), "c", "v").Return(nil)
	messenger.EXPECT().Receive(gomock.Any(), "c-reply", time.Second).Return("", domain.ErrReplyTimeout)

	_, err := p.Publish(context.Background(), "c", "v", true)
	require.ErrorIs(t, err, domain.ErrReplyTimeout)
}

func TestPublisher_Publish_ReplyTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockMessenger(ctrl)
	p := publisher.New(messenger, 0)

	messenger.EXPECT().Publish(gomock.Any(), "c", "v").Return(nil)
	messenger.EXPECT().Receive(gomock.Any(), "c-reply", time.Duration(0)).Return("", errors.New("broken pipe"))

	_, err := p.Publish(context.Background(), "c", "v", true)
	require.ErrorIs(t, err, domain.ErrMessaging)
}

func TestPublisher_Publish_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mocks.NewMockMessenger(ctrl)
	p := publisher.New(messenger, 0)

	ctx, cancel := context.WithCancel(context.Background())

	messenger.EXPECT().Publish(gomock.Any(), "c", "v").Return(nil)
	messenger.EXPECT().Receive(gomock.Any(), "c-reply", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ time.Duration) (string, error) {
			cancel()
			<-ctx.Done()
			return "", ctx.Err()
		})

	_, err := p.Publish(ctx, "c", "v", true)
	require.ErrorIs(t, err, context.Canceled)
}
