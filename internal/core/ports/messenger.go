package ports

import (
	"context"
	"time"

	"go.trai.ch/relay/internal/core/domain"
)

//go:generate mockgen -source=messenger.go -destination=mocks/mock_messenger.go -package=mocks

// Messenger is the publish/subscribe transport values are announced on.
type Messenger interface {
	// Publish announces payload on channel. It does not wait for subscribers.
	Publish(ctx context.Context, channel, payload string) error

	// Receive blocks until one payload is available on queue, the timeout
	// elapses, or ctx is cancelled. A zero timeout waits until cancelled.
	// It returns domain.ErrReplyTimeout when the timeout elapses.
	Receive(ctx context.Context, queue string, timeout time.Duration) (string, error)

	// Close releases transport resources.
	Close() error
}

// MessengerConnector creates messengers from configuration.
type MessengerConnector interface {
	// Connect returns a messenger for the configured transport.
	Connect(ctx context.Context, cfg domain.MessagingConfig) (Messenger, error)
}
