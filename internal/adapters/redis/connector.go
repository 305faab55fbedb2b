package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MessengerConnector = (*Connector)(nil)

// Connector dials Redis and verifies the connection before handing out a Messenger.
type Connector struct{}

// NewConnector creates a new Connector.
func NewConnector() *Connector {
	return &Connector{}
}

// Connect opens a client for cfg and pings the server.
func (c *Connector) Connect(ctx context.Context, cfg domain.MessagingConfig) (ports.Messenger, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(
			domain.ErrMessaging,
			zerr.With(zerr.Wrap(err, "redis ping failed"), "address", cfg.Address),
		)
	}

	return NewMessenger(client), nil
}
