package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/adapters/logger"
	"go.trai.ch/relay/internal/adapters/telemetry"
	"go.trai.ch/relay/internal/app"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/relay/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app        *app.App
	loader     *mocks.MockConfigLoader
	queues     *mocks.MockQueueConnector
	queue      *mocks.MockQueueClient
	messengers *mocks.MockMessengerConnector
	messenger  *mocks.MockMessenger
	store      *mocks.MockResourceStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:     mocks.NewMockConfigLoader(ctrl),
		queues:     mocks.NewMockQueueConnector(ctrl),
		queue:      mocks.NewMockQueueClient(ctrl),
		messengers: mocks.NewMockMessengerConnector(ctrl),
		messenger:  mocks.NewMockMessenger(ctrl),
		store:      mocks.NewMockResourceStore(ctrl),
	}
	h.app = app.New(h.loader, h.queues, h.messengers, h.store, logger.NewWithOutput(io.Discard), telemetry.NewNoOpTracer())
	return h
}

func queueConfig() *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Queue.Endpoint = "http://127.0.0.1:8773/services/SimpleWorkflow/"
	cfg.Queue.Domain = "LoadbalancingDomain"
	cfg.Queue.TaskList = "lb-1"
	return cfg
}

func blockUntilDone(ctx context.Context) (*domain.ActivityTask, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestApp_Serve(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := queueConfig()
	h.loader.EXPECT().Load("relay.yaml").Return(cfg, nil)
	h.queues.EXPECT().Connect(gomock.Any(), cfg.Queue).Return(h.queue, nil)
	h.messengers.EXPECT().Connect(gomock.Any(), cfg.Messaging).Return(h.messenger, nil)

	gomock.InOrder(
		h.queue.EXPECT().Poll(gomock.Any()).Return(&domain.ActivityTask{
			Token:    "tok",
			Activity: "LoadBalancingVmActivities.setLoadBalancer",
			Params:   []string{"<lb/>"},
		}, nil),
		h.store.EXPECT().Put(domain.DefaultResourceRoot, "loadbalancer", "<lb/>").Return(nil),
		h.messenger.EXPECT().Publish(gomock.Any(), "set-loadbalancer", "<lb/>").Return(nil),
		h.queue.EXPECT().Complete(gomock.Any(), "tok", "null").DoAndReturn(
			func(context.Context, string, string) error {
				cancel()
				return nil
			}),
	)
	h.queue.EXPECT().Poll(gomock.Any()).DoAndReturn(blockUntilDone).AnyTimes()
	h.messenger.EXPECT().Close().Return(nil)

	require.NoError(t, h.app.Serve(ctx, app.Options{ConfigPath: "relay.yaml"}))
}

func TestApp_Serve_FlagOverrides(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	replyTimeout := 5 * time.Second
	h.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	h.queues.EXPECT().Connect(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q domain.QueueConfig) (ports.QueueClient, error) {
			assert.Equal(t, "http://swf", q.Endpoint)
			assert.Equal(t, "d", q.Domain)
			assert.Equal(t, "t", q.TaskList)
			assert.True(t, q.Register)
			return h.queue, nil
		})
	h.messengers.EXPECT().Connect(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m domain.MessagingConfig) (ports.Messenger, error) {
			assert.Equal(t, replyTimeout, m.ReplyTimeout)
			return h.messenger, nil
		})
	h.queue.EXPECT().Register(gomock.Any(), gomock.Len(4), domain.DefaultActivityVersion).Return(nil)
	h.messenger.EXPECT().Close().Return(nil)

	err := h.app.Serve(ctx, app.Options{
		Endpoint:     "http://swf",
		Domain:       "d",
		TaskList:     "t",
		Workers:      2,
		ReplyTimeout: &replyTimeout,
		Register:     true,
	})
	require.NoError(t, err)
}

func TestApp_Serve_MissingQueueSettings(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)

	err := h.app.Serve(context.Background(), app.Options{})
	assert.ErrorIs(t, err, domain.ErrMissingQueueSettings)
}

func TestApp_Serve_QueueConnectFailure(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("").Return(queueConfig(), nil)
	h.queues.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, errors.New("no credentials"))

	err := h.app.Serve(context.Background(), app.Options{})
	assert.ErrorIs(t, err, domain.ErrQueueUnavailable)
}

func TestApp_Serve_MessagingFailure(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("").Return(queueConfig(), nil)
	h.queues.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(h.queue, nil)
	h.messengers.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, domain.ErrMessaging)

	err := h.app.Serve(context.Background(), app.Options{})
	assert.ErrorIs(t, err, domain.ErrMessaging)
}

func TestApp_Serve_PollFailure(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("").Return(queueConfig(), nil)
	h.queues.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(h.queue, nil)
	h.messengers.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(h.messenger, nil)
	h.queue.EXPECT().Poll(gomock.Any()).Return(nil, errors.New("connection reset"))
	h.messenger.EXPECT().Close().Return(nil)

	err := h.app.Serve(context.Background(), app.Options{})
	assert.ErrorIs(t, err, domain.ErrQueueUnavailable)
}

func TestApp_Serve_ConfigError(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("bad.yaml").Return(nil, domain.ErrConfigParseFailed)

	err := h.app.Serve(context.Background(), app.Options{ConfigPath: "bad.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Serve_InvalidRoutes(t *testing.T) {
	h := newHarness(t)

	cfg := queueConfig()
	cfg.Routes = []domain.Route{
		{Activity: "a", Channel: "set-x", Cache: true},
		{Activity: "b", Channel: "set-x"},
	}
	h.loader.EXPECT().Load("").Return(cfg, nil)

	err := h.app.Serve(context.Background(), app.Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidRoutes)
}

func TestApp_Serve_InvalidLogLevel(t *testing.T) {
	h := newHarness(t)

	err := h.app.Serve(context.Background(), app.Options{LogLevel: "verbose"})
	assert.Error(t, err)
}

func TestApp_Register(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("").Return(queueConfig(), nil)
	h.queues.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(h.queue, nil)
	h.queue.EXPECT().Register(gomock.Any(), gomock.Any(), "1.0").DoAndReturn(
		func(_ context.Context, routes []domain.Route, _ string) error {
			require.Len(t, routes, 4)
			assert.Equal(t, "LoadBalancingVmActivities.getCloudWatchMetrics", routes[0].Activity)
			return nil
		})

	require.NoError(t, h.app.Register(context.Background(), app.Options{}))
}

func TestApp_Routes(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)

	var buf bytes.Buffer
	require.NoError(t, h.app.Routes(&buf, app.Options{}))

	out := buf.String()
	assert.Contains(t, out, "ACTIVITY")
	assert.Contains(t, out, "LoadBalancingVmActivities.setPolicy")
	assert.Contains(t, out, "set-policy")
	assert.Contains(t, out, "policy.xml")
	assert.Contains(t, out, "GetInstanceStatus")
}
