// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/relay/internal/core/domain"
)

//go:generate mockgen -source=queue.go -destination=mocks/mock_queue.go -package=mocks

// TaskQueue is the activity task queue the dispatcher consumes from.
type TaskQueue interface {
	// Poll waits for the next task. It returns nil, nil when the poll timed
	// out without a task. Any error is a transport failure.
	Poll(ctx context.Context) (*domain.ActivityTask, error)

	// Complete reports successful completion with a JSON result payload.
	Complete(ctx context.Context, token, result string) error

	// Fail reports a task failure.
	Fail(ctx context.Context, token string, failure domain.Failure) error
}

// ActivityRegistrar registers activity types with the queue service.
type ActivityRegistrar interface {
	// Register declares every routed activity under version.
	Register(ctx context.Context, routes []domain.Route, version string) error
}

// QueueClient is a connected queue session.
type QueueClient interface {
	TaskQueue
	ActivityRegistrar
}

// QueueConnector creates queue clients from configuration.
type QueueConnector interface {
	// Connect returns a client for the configured queue.
	Connect(ctx context.Context, cfg domain.QueueConfig) (QueueClient, error)
}
