package swf

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/swf"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
)

// pollReadTimeout exceeds the 60 second server side long poll.
const pollReadTimeout = 70 * time.Second

var _ ports.QueueConnector = (*Connector)(nil)

// Connector builds SWF clients.
type Connector struct {
	logger ports.Logger
}

// NewConnector creates a new Connector.
func NewConnector(logger ports.Logger) *Connector {
	return &Connector{logger: logger}
}

// Connect builds a client for cfg. Credentials come from the default AWS
// chain: environment, shared files or instance metadata.
func (c *Connector) Connect(ctx context.Context, cfg domain.QueueConfig) (ports.QueueClient, error) {
	httpClient := awshttp.NewBuildableClient().
		WithTimeout(pollReadTimeout).
		WithDialerOptions(func(d *net.Dialer) {
			d.Timeout = cfg.ConnectTimeout
		}).
		WithTransportOptions(func(tr *http.Transport) {
			tr.MaxConnsPerHost = cfg.MaxConnections
		})

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, errors.Join(domain.ErrQueueUnavailable, zerr.Wrap(err, "failed to load aws configuration"))
	}

	api := swf.NewFromConfig(awsCfg, func(o *swf.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	c.logger.Info("using queue endpoint", "endpoint", cfg.Endpoint, "domain", cfg.Domain, "tasklist", cfg.TaskList)
	return NewClient(api, cfg, c.logger), nil
}
