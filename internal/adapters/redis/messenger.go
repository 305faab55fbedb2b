// Package redis implements ports.Messenger over Redis: channels are PUBLISH
// targets and reply queues are lists drained with BLPOP.
package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultWaitSlice is the longest single BLPOP issued while waiting for a reply.
	DefaultWaitSlice = time.Second
	// tailPollInterval spaces the non-blocking pops issued once less than a
	// second of the reply timeout remains. BLPOP only takes whole seconds.
	tailPollInterval = 50 * time.Millisecond
)

var _ ports.Messenger = (*Messenger)(nil)

// Messenger implements ports.Messenger using a go-redis client.
type Messenger struct {
	client goredis.UniversalClient
	slice  time.Duration
}

// NewMessenger wraps client. The messenger owns the client and closes it on Close.
func NewMessenger(client goredis.UniversalClient) *Messenger {
	return &Messenger{client: client, slice: DefaultWaitSlice}
}

// Publish announces payload on channel.
func (m *Messenger) Publish(ctx context.Context, channel, payload string) error {
	if err := m.client.Publish(ctx, channel, payload).Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "redis publish failed"), "channel", channel)
	}
	return nil
}

// Receive pops one payload from queue. The wait is issued in slices so that
// cancellation is observed between them; a slice that has started always
// completes, so a popped payload is never dropped.
func (m *Messenger) Receive(ctx context.Context, queue string, timeout time.Duration) (string, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		wait := m.slice
		if !deadline.IsZero() {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return "", replyTimeout(queue)
			}
			if remaining < time.Second {
				return m.popUntil(ctx, queue, deadline)
			}
			wait = min(wait, remaining.Truncate(time.Second))
		}

		res, err := m.client.BLPop(context.WithoutCancel(ctx), wait, queue).Result()
		if errors.Is(err, goredis.Nil) {
			continue
		}
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "redis blpop failed"), "queue", queue)
		}
		if len(res) < 2 {
			return "", zerr.With(zerr.New("malformed blpop reply"), "queue", queue)
		}

		return res[1], nil
	}
}

// popUntil polls queue with LPOP until a payload arrives or deadline passes.
func (m *Messenger) popUntil(ctx context.Context, queue string, deadline time.Time) (string, error) {
	for {
		res, err := m.client.LPop(context.WithoutCancel(ctx), queue).Result()
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, goredis.Nil) {
			return "", zerr.With(zerr.Wrap(err, "redis lpop failed"), "queue", queue)
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", replyTimeout(queue)
		}

		timer := time.NewTimer(min(tailPollInterval, remaining))
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}
}

func replyTimeout(queue string) error {
	return errors.Join(
		domain.ErrReplyTimeout,
		zerr.With(zerr.New("no reply"), "queue", queue),
	)
}

// Close releases the client connection pool.
func (m *Messenger) Close() error {
	return m.client.Close()
}
