// Package app implements the application layer for relay.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/relay/internal/engine/dispatcher"
	"go.trai.ch/relay/internal/engine/poller"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	queues       ports.QueueConnector
	messengers   ports.MessengerConnector
	store        ports.ResourceStore
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	queues ports.QueueConnector,
	messengers ports.MessengerConnector,
	store ports.ResourceStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		queues:       queues,
		messengers:   messengers,
		store:        store,
		logger:       logger,
		tracer:       tracer,
	}
}

// Options selects the configuration file and the values that override it.
// Zero values leave the file setting untouched.
type Options struct {
	ConfigPath   string
	Endpoint     string
	Domain       string
	TaskList     string
	Workers      int
	ReplyTimeout *time.Duration
	Register     bool
	LogLevel     string
}

func (o Options) apply(cfg *domain.Config) {
	if o.Endpoint != "" {
		cfg.Queue.Endpoint = o.Endpoint
	}
	if o.Domain != "" {
		cfg.Queue.Domain = o.Domain
	}
	if o.TaskList != "" {
		cfg.Queue.TaskList = o.TaskList
	}
	if o.Workers != 0 {
		cfg.Workers = o.Workers
	}
	if o.ReplyTimeout != nil {
		cfg.Messaging.ReplyTimeout = *o.ReplyTimeout
	}
	if o.Register {
		cfg.Queue.Register = true
	}
}

// load resolves the configuration and builds the routing table.
func (a *App) load(opts Options) (*domain.Config, *domain.RoutingTable, error) {
	if opts.LogLevel != "" {
		if setter, ok := a.logger.(ports.LevelSetter); ok {
			if err := setter.SetLevel(opts.LogLevel); err != nil {
				return nil, nil, err
			}
		}
	}

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	routes, err := domain.NewRoutingTable(cfg.Routes)
	if err != nil {
		return nil, nil, err
	}

	return cfg, routes, nil
}

func (a *App) connectQueue(ctx context.Context, cfg *domain.Config) (ports.QueueClient, error) {
	if err := cfg.ValidateQueue(); err != nil {
		return nil, err
	}

	queue, err := a.queues.Connect(ctx, cfg.Queue)
	if err != nil {
		if errors.Is(err, domain.ErrQueueUnavailable) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrQueueUnavailable, err)
	}
	return queue, nil
}

// Serve polls the queue and dispatches tasks until ctx is cancelled or the
// queue becomes unreachable.
func (a *App) Serve(ctx context.Context, opts Options) error {
	cfg, routes, err := a.load(opts)
	if err != nil {
		return err
	}

	queue, err := a.connectQueue(ctx, cfg)
	if err != nil {
		return err
	}

	messenger, err := a.messengers.Connect(ctx, cfg.Messaging)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := messenger.Close(); cErr != nil {
			a.logger.Warn("failed to close messenger", "error", cErr.Error())
		}
	}()

	if cfg.Queue.Register {
		if err := queue.Register(ctx, routes.Routes(), cfg.Queue.ActivityVersion); err != nil {
			return zerr.Wrap(err, "failed to register activity types")
		}
	}

	d := dispatcher.New(routes, a.store, messenger, a.logger, a.tracer, dispatcher.Options{
		Root:         cfg.Storage.Root,
		CacheTTL:     cfg.Cache.TTL,
		ReplyTimeout: cfg.Messaging.ReplyTimeout,
	})
	p := poller.New(queue, d, a.logger, poller.Options{
		Workers:       cfg.Workers,
		FailureClass:  cfg.FailureClass,
		ReportTimeout: domain.DefaultReportTimeout,
	})

	a.logger.Info("polling for tasks",
		"tasklist", cfg.Queue.TaskList,
		"workers", cfg.Workers,
		"activities", len(routes.Routes()),
	)
	if err := p.Run(ctx); err != nil {
		return err
	}

	a.logger.Info("stopped polling")
	return nil
}

// Register declares the activity types of the routing table with the queue.
func (a *App) Register(ctx context.Context, opts Options) error {
	cfg, routes, err := a.load(opts)
	if err != nil {
		return err
	}

	queue, err := a.connectQueue(ctx, cfg)
	if err != nil {
		return err
	}

	if err := queue.Register(ctx, routes.Routes(), cfg.Queue.ActivityVersion); err != nil {
		return zerr.Wrap(err, "failed to register activity types")
	}
	return nil
}
