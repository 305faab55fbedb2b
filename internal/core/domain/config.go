package domain

import (
	"errors"
	"time"

	"go.trai.ch/zerr"
)

// Config is the resolved runtime configuration.
type Config struct {
	Queue        QueueConfig
	Messaging    MessagingConfig
	Storage      StorageConfig
	Cache        CacheConfig
	Workers      int
	FailureClass string
	Routes       []Route
}

// QueueConfig configures the activity task queue.
type QueueConfig struct {
	Endpoint        string
	Domain          string
	TaskList        string
	Region          string
	ConnectTimeout  time.Duration
	MaxConnections  int
	ActivityVersion string
	Register        bool
}

// Identity returns the worker identity reported when polling.
func (q QueueConfig) Identity() string {
	return "relay-worker-" + q.TaskList
}

// MessagingConfig configures the publish/subscribe transport.
type MessagingConfig struct {
	Address  string
	Password string
	DB       int
	// ReplyTimeout bounds the wait for a query reply. Zero waits until cancelled.
	ReplyTimeout time.Duration
}

// StorageConfig configures durable persistence of changed values.
type StorageConfig struct {
	Root string
}

// CacheConfig configures the content-addressed value cache.
type CacheConfig struct {
	TTL time.Duration
}

// DefaultConfig returns a Config populated with defaults and the built-in routes.
func DefaultConfig() *Config {
	return &Config{
		Queue: QueueConfig{
			Region:          DefaultRegion,
			ConnectTimeout:  DefaultConnectTimeout,
			MaxConnections:  1,
			ActivityVersion: DefaultActivityVersion,
		},
		Messaging:    MessagingConfig{Address: DefaultRedisAddress},
		Storage:      StorageConfig{Root: DefaultResourceRoot},
		Cache:        CacheConfig{TTL: DefaultCacheTTL},
		Workers:      1,
		FailureClass: DefaultFailureClass,
		Routes:       DefaultRoutes(),
	}
}

// Validate checks value ranges that cannot be expressed in the file schema.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Join(ErrInvalidConfig, zerr.With(zerr.New("workers must be at least 1"), "workers", c.Workers))
	}
	if c.Cache.TTL <= 0 {
		return errors.Join(ErrInvalidConfig, zerr.With(zerr.New("cache ttl must be positive"), "ttl", c.Cache.TTL.String()))
	}
	if c.Messaging.ReplyTimeout < 0 {
		return errors.Join(ErrInvalidConfig, zerr.With(zerr.New("reply timeout must not be negative"), "reply_timeout", c.Messaging.ReplyTimeout.String()))
	}
	if c.Queue.MaxConnections < 1 {
		return errors.Join(ErrInvalidConfig, zerr.With(zerr.New("max connections must be at least 1"), "max_connections", c.Queue.MaxConnections))
	}
	if c.Storage.Root == "" {
		return errors.Join(ErrInvalidConfig, zerr.New("storage root is empty"))
	}
	return nil
}

// ValidateQueue checks that the settings needed to reach the queue are present.
func (c *Config) ValidateQueue() error {
	if c.Queue.Endpoint == "" || c.Queue.Domain == "" || c.Queue.TaskList == "" {
		return ErrMissingQueueSettings
	}
	return nil
}
