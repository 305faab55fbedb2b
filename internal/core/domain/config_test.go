package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/core/domain"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := domain.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.DefaultCacheTTL, cfg.Cache.TTL)
	assert.Equal(t, 1, cfg.Workers)
	assert.ErrorIs(t, cfg.ValidateQueue(), domain.ErrMissingQueueSettings)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Config)
	}{
		{"zero workers", func(c *domain.Config) { c.Workers = 0 }},
		{"zero ttl", func(c *domain.Config) { c.Cache.TTL = 0 }},
		{"negative reply timeout", func(c *domain.Config) { c.Messaging.ReplyTimeout = -time.Second }},
		{"zero max connections", func(c *domain.Config) { c.Queue.MaxConnections = 0 }},
		{"empty storage root", func(c *domain.Config) { c.Storage.Root = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)
		})
	}
}

func TestQueueConfig_Identity(t *testing.T) {
	assert.Equal(t, "relay-worker-lb-tasks", domain.QueueConfig{TaskList: "lb-tasks"}.Identity())
}
