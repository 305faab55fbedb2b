// Package poller runs the long-poll loop that feeds activity tasks from the
// work queue to a Handler and reports each outcome back.
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Handler turns an activity task into its result.
type Handler interface {
	Handle(ctx context.Context, task *domain.ActivityTask) domain.TaskResult
}

// Options configures a Poller.
type Options struct {
	// Workers is the number of concurrent poll loops. Values below 1 mean 1.
	Workers int
	// FailureClass is the exception class reported with failed tasks.
	FailureClass string
	// ReportTimeout bounds each Complete or Fail call.
	ReportTimeout time.Duration
}

// Poller owns the poll workers.
type Poller struct {
	queue   ports.TaskQueue
	handler Handler
	logger  ports.Logger
	opts    Options
}

// New creates a Poller.
func New(queue ports.TaskQueue, handler Handler, logger ports.Logger, opts Options) *Poller {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.FailureClass == "" {
		opts.FailureClass = domain.DefaultFailureClass
	}
	if opts.ReportTimeout <= 0 {
		opts.ReportTimeout = domain.DefaultReportTimeout
	}
	return &Poller{queue: queue, handler: handler, logger: logger, opts: opts}
}

// Run polls until ctx is cancelled or the queue becomes unreachable.
// Cancellation is a clean shutdown and returns nil. Tasks already taken are
// reported before their worker exits.
func (p *Poller) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := range p.opts.Workers {
		worker := i + 1
		g.Go(func() error {
			return p.work(ctx, worker)
		})
	}

	return g.Wait()
}

func (p *Poller) work(ctx context.Context, worker int) error {
	p.logger.Debug("poll worker started", "worker", worker)
	defer p.logger.Debug("poll worker stopped", "worker", worker)

	for {
		if ctx.Err() != nil {
			return nil
		}

		task, err := p.queue.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Join(domain.ErrQueueUnavailable, zerr.With(zerr.Wrap(err, "poll failed"), "worker", worker))
		}
		if task == nil {
			continue
		}

		p.process(ctx, worker, task)
	}
}

func (p *Poller) process(ctx context.Context, worker int, task *domain.ActivityTask) {
	id := uuid.NewString()
	p.logger.Debug("received activity task", "worker", worker, "task", id, "activity", task.Activity)

	result := p.handler.Handle(ctx, task)

	// The outcome is reported even when shutdown has begun.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.opts.ReportTimeout)
	defer cancel()

	if result.Succeeded() {
		if err := p.queue.Complete(rctx, result.Token, result.EncodeResult()); err != nil {
			p.logger.Error(errors.Join(domain.ErrReportFailed, zerr.With(zerr.Wrap(err, "complete failed"), "task", id)))
			return
		}
		p.logger.Debug("activity task completed", "worker", worker, "task", id)
		return
	}

	failure := domain.NewFailure(p.opts.FailureClass, result.Err)
	p.logger.Warn("activity task failed", "worker", worker, "task", id, "activity", task.Activity, "reason", failure.Reason)
	if err := p.queue.Fail(rctx, result.Token, failure); err != nil {
		p.logger.Error(errors.Join(domain.ErrReportFailed, zerr.With(zerr.Wrap(err, "fail report failed"), "task", id)))
	}
}
