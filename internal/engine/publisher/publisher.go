// Package publisher announces values on channels and collects query replies.
package publisher

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
)

// Publisher publishes values through a ports.Messenger.
type Publisher struct {
	messenger    ports.Messenger
	replyTimeout time.Duration
}

// New creates a Publisher. A zero replyTimeout waits for replies until the
// caller's context is cancelled.
func New(messenger ports.Messenger, replyTimeout time.Duration) *Publisher {
	return &Publisher{
		messenger:    messenger,
		replyTimeout: replyTimeout,
	}
}

// Publish announces value on channel. When awaitReply is set it then blocks
// for exactly one payload on the channel's reply queue and returns it.
func (p *Publisher) Publish(ctx context.Context, channel, value string, awaitReply bool) (*string, error) {
	if err := p.messenger.Publish(ctx, channel, value); err != nil {
		return nil, errors.Join(domain.ErrMessaging, zerr.With(zerr.Wrap(err, "publish failed"), "channel", channel))
	}

	if !awaitReply {
		return nil, nil
	}

	replyQueue := domain.ReplyChannel(channel)
	reply, err := p.messenger.Receive(ctx, replyQueue, p.replyTimeout)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReplyTimeout):
			return nil, errors.Join(domain.ErrReplyTimeout, zerr.With(zerr.New("no reply"), "queue", replyQueue))
		case ctx.Err() != nil:
			return nil, errors.Join(ctx.Err(), zerr.With(zerr.New("reply wait interrupted"), "queue", replyQueue))
		default:
			return nil, errors.Join(domain.ErrMessaging, zerr.With(zerr.Wrap(err, "reply wait failed"), "queue", replyQueue))
		}
	}

	return &reply, nil
}
