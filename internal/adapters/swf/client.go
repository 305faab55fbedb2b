// Package swf implements the activity task queue over the Amazon Simple
// Workflow API, as served by Eucalyptus.
package swf

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/swf"
	"github.com/aws/aws-sdk-go-v2/service/swf/types"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
)

// Default activity type timeouts, in seconds.
const (
	heartbeatTimeout       = "NONE"
	startToCloseTimeout    = "60"
	scheduleToStartTimeout = "60"
	scheduleToCloseTimeout = "120"
)

// API is the subset of the SWF client used by Client.
type API interface {
	PollForActivityTask(ctx context.Context, in *swf.PollForActivityTaskInput, opts ...func(*swf.Options)) (*swf.PollForActivityTaskOutput, error)
	RespondActivityTaskCompleted(ctx context.Context, in *swf.RespondActivityTaskCompletedInput, opts ...func(*swf.Options)) (*swf.RespondActivityTaskCompletedOutput, error)
	RespondActivityTaskFailed(ctx context.Context, in *swf.RespondActivityTaskFailedInput, opts ...func(*swf.Options)) (*swf.RespondActivityTaskFailedOutput, error)
	RegisterActivityType(ctx context.Context, in *swf.RegisterActivityTypeInput, opts ...func(*swf.Options)) (*swf.RegisterActivityTypeOutput, error)
}

var (
	_ API               = (*swf.Client)(nil)
	_ ports.QueueClient = (*Client)(nil)
)

// Client implements ports.QueueClient for one domain and task list.
type Client struct {
	api      API
	domain   string
	taskList string
	identity string
	logger   ports.Logger
}

// NewClient creates a Client bound to the domain and task list in cfg.
func NewClient(api API, cfg domain.QueueConfig, logger ports.Logger) *Client {
	return &Client{
		api:      api,
		domain:   cfg.Domain,
		taskList: cfg.TaskList,
		identity: cfg.Identity(),
		logger:   logger,
	}
}

// Poll long-polls for one activity task. An empty poll returns nil, nil.
func (c *Client) Poll(ctx context.Context) (*domain.ActivityTask, error) {
	out, err := c.api.PollForActivityTask(ctx, &swf.PollForActivityTaskInput{
		Domain:   aws.String(c.domain),
		TaskList: &types.TaskList{Name: aws.String(c.taskList)},
		Identity: aws.String(c.identity),
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "poll for activity task failed"), "tasklist", c.taskList)
	}

	token := aws.ToString(out.TaskToken)
	if token == "" {
		return nil, nil
	}

	task := &domain.ActivityTask{Token: token}
	if out.ActivityType != nil {
		task.Activity = aws.ToString(out.ActivityType.Name)
	}
	task.Params, task.DecodeErr = domain.ParseParams(aws.ToString(out.Input))

	return task, nil
}

// Complete reports a successful task with its JSON result.
func (c *Client) Complete(ctx context.Context, token, result string) error {
	_, err := c.api.RespondActivityTaskCompleted(ctx, &swf.RespondActivityTaskCompletedInput{
		TaskToken: aws.String(token),
		Result:    aws.String(result),
	})
	if err != nil {
		return zerr.Wrap(err, "respond activity task completed failed")
	}
	return nil
}

// Fail reports a failed task.
func (c *Client) Fail(ctx context.Context, token string, failure domain.Failure) error {
	_, err := c.api.RespondActivityTaskFailed(ctx, &swf.RespondActivityTaskFailedInput{
		TaskToken: aws.String(token),
		Reason:    aws.String(failure.Reason),
		Details:   aws.String(failure.Details),
	})
	if err != nil {
		return zerr.Wrap(err, "respond activity task failed failed")
	}
	return nil
}

// Register declares an activity type for every route. Types that already
// exist are left untouched.
func (c *Client) Register(ctx context.Context, routes []domain.Route, version string) error {
	for _, route := range routes {
		_, err := c.api.RegisterActivityType(ctx, &swf.RegisterActivityTypeInput{
			Domain:                            aws.String(c.domain),
			Name:                              aws.String(route.Activity),
			Version:                           aws.String(version),
			Description:                       aws.String(""),
			DefaultTaskHeartbeatTimeout:       aws.String(heartbeatTimeout),
			DefaultTaskStartToCloseTimeout:    aws.String(startToCloseTimeout),
			DefaultTaskScheduleToStartTimeout: aws.String(scheduleToStartTimeout),
			DefaultTaskScheduleToCloseTimeout: aws.String(scheduleToCloseTimeout),
		})

		var exists *types.TypeAlreadyExistsFault
		switch {
		case err == nil:
			c.logger.Info("registered activity type", "activity", route.Activity, "version", version)
		case errors.As(err, &exists):
			c.logger.Info("activity type already exists", "activity", route.Activity, "version", version)
		default:
			return zerr.With(zerr.Wrap(err, "register activity type failed"), "activity", route.Activity)
		}
	}
	return nil
}
