// Package dispatcher implements the task dispatcher: it routes an activity
// task to its channel, passing cache-enabled values through the value cache,
// change detection and persistence before they are published.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/relay/internal/engine/detector"
	"go.trai.ch/relay/internal/engine/publisher"
	"go.trai.ch/relay/internal/engine/valuecache"
	"go.trai.ch/zerr"
)

// Options configures a Dispatcher.
type Options struct {
	// Root is the directory changed values are persisted under.
	Root string
	// CacheTTL is the lifetime of cached values.
	CacheTTL time.Duration
	// ReplyTimeout bounds the wait for query replies. Zero waits until cancelled.
	ReplyTimeout time.Duration
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Dispatcher handles activity tasks. It is safe for concurrent use by
// multiple poll workers.
type Dispatcher struct {
	routes    *domain.RoutingTable
	caches    *valuecache.Set
	detector  *detector.Detector
	store     ports.ResourceStore
	publisher *publisher.Publisher
	logger    ports.Logger
	tracer    ports.Tracer
	root      string
	now       func() time.Time

	// locks serialize cache, detect, persist and publish per cache-enabled
	// activity, so subscribers see values in the order they were persisted.
	locks map[string]*sync.Mutex
}

// New creates a Dispatcher with one cache partition and one last value per
// cache-enabled route.
func New(
	routes *domain.RoutingTable,
	store ports.ResourceStore,
	messenger ports.Messenger,
	logger ports.Logger,
	tracer ports.Tracer,
	opts Options,
) *Dispatcher {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cached := routes.CachedActivities()
	locks := make(map[string]*sync.Mutex, len(cached))
	for _, a := range cached {
		locks[a] = &sync.Mutex{}
	}

	return &Dispatcher{
		routes:    routes,
		caches:    valuecache.NewSet(opts.CacheTTL, cached...),
		detector:  detector.New(cached...),
		store:     store,
		publisher: publisher.New(messenger, opts.ReplyTimeout),
		logger:    logger,
		tracer:    tracer,
		root:      opts.Root,
		now:       opts.Now,
		locks:     locks,
	}
}

// Handle dispatches task and returns its outcome. It never returns an error
// directly: every failure is carried in the TaskResult.
func (d *Dispatcher) Handle(ctx context.Context, task *domain.ActivityTask) domain.TaskResult {
	ctx, span := d.tracer.Start(ctx, "dispatch", ports.WithAttribute("activity", task.Activity))
	defer span.End()

	d.logger.Debug("handling activity", "activity", task.Activity, "params", len(task.Params))

	reply, err := d.dispatch(ctx, span, task)
	if err != nil {
		span.RecordError(err)
		d.logger.Debug("activity task failed", "activity", task.Activity, "error", domain.FailureMessage(err))
		return domain.TaskResult{Token: task.Token, Err: err}
	}

	d.logger.Debug("activity task completed", "activity", task.Activity, "reply", reply != nil)
	return domain.TaskResult{Token: task.Token, Reply: reply}
}

func (d *Dispatcher) dispatch(ctx context.Context, span ports.Span, task *domain.ActivityTask) (*string, error) {
	if task.DecodeErr != nil {
		return nil, task.DecodeErr
	}

	route, ok := d.routes.Lookup(task.Activity)
	if !ok {
		return nil, errors.Join(domain.ErrUnroutableActivity, zerr.With(zerr.New("no route"), "activity", task.Activity))
	}
	span.SetAttribute("channel", route.Channel)

	value, err := effectiveValue(route, task)
	if err != nil {
		return nil, err
	}

	if route.Cache {
		lock := d.locks[route.Activity]
		lock.Lock()
		defer lock.Unlock()

		value, err = d.track(route, value, span)
		if err != nil {
			return nil, err
		}
	}

	return d.publisher.Publish(ctx, route.Channel, value, !task.HasParam())
}

// track resolves value through the activity's cache partition and persists
// it when it differs from the last known value. The caller holds the
// activity's lock.
func (d *Dispatcher) track(route domain.Route, input string, span ports.Span) (string, error) {
	partition, ok := d.caches.Partition(route.Activity)
	if !ok {
		return "", errors.Join(domain.ErrUnroutableActivity, zerr.With(zerr.New("no cache partition"), "activity", route.Activity))
	}

	value, key, err := partition.Resolve(input, d.now())
	if err != nil {
		return "", err
	}
	span.SetAttribute("cached", value != input)
	d.logger.Debug("resolved cached value", "activity", route.Activity, "key", key, "value_fp", fingerprint(value))

	previous := d.detector.Last(route.Activity)
	changed := d.detector.IsChanged(route.Activity, value)
	span.SetAttribute("changed", changed)
	if !changed {
		return value, nil
	}

	d.logger.Info("activity value updated", "activity", route.Activity, "resource", route.Resource)
	if err := d.store.Put(d.root, route.Resource, value); err != nil {
		d.detector.Reset(route.Activity, previous)
		if errors.Is(err, domain.ErrPersistFailed) {
			return "", err
		}
		return "", errors.Join(domain.ErrPersistFailed, zerr.With(zerr.Wrap(err, "store rejected value"), "resource", route.Resource))
	}

	return value, nil
}

// effectiveValue picks the task parameter, falling back to the route default.
func effectiveValue(route domain.Route, task *domain.ActivityTask) (string, error) {
	if task.HasParam() {
		return task.Params[0], nil
	}
	if route.Default != nil {
		return *route.Default, nil
	}
	return "", errors.Join(domain.ErrMissingDefault, zerr.With(zerr.New("task has no parameter"), "activity", task.Activity))
}

// fingerprint identifies a value in logs without printing it.
func fingerprint(value string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(value))
}
