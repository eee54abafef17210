package triggerx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	httppkg "github.com/trigg3rX/triggerx-sdk-go/pkg/http"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/jobs"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/logging"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/retry"
)

// Config configures a Client.
type Config struct {
	APIKey         string        `validate:"required"`
	BaseURL        string        `validate:"omitempty,url"`
	RequestTimeout time.Duration `validate:"gte=0"`
	MaxRetries     int           `validate:"gte=0,lte=10"`
}

var configValidator = validator.New()

// Validate checks the configuration before any client is built.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid client config: %s failed on %q", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("invalid client config: %w", err)
	}
	return nil
}

func (c Config) httpRetryConfig() *httppkg.HTTPRetryConfig {
	httpConfig := httppkg.DefaultHTTPRetryConfig()
	if c.RequestTimeout > 0 {
		httpConfig.Timeout = c.RequestTimeout
	}
	if c.MaxRetries > 0 {
		retryConfig := *retry.DefaultRetryConfig()
		retryConfig.MaxRetries = c.MaxRetries
		httpConfig.RetryConfig = &retryConfig
	}
	return httpConfig
}

// Client is the TriggerX SDK entry point. It validates job intents locally and
// talks to the API through an APIClient.
type Client struct {
	api     APIClient
	builder *jobs.Builder
	logger  logging.Logger
	closer  func()
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBuilder replaces the job request builder, mostly to pin the clock in tests.
func WithBuilder(builder *jobs.Builder) ClientOption {
	return func(c *Client) {
		c.builder = builder
	}
}

// New creates a Client that talks HTTP to the configured API.
func New(cfg Config, logger logging.Logger, opts ...ClientOption) (*Client, error) {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	api, err := NewHTTPAPIClient(logger, cfg.BaseURL, cfg.APIKey, cfg.httpRetryConfig())
	if err != nil {
		return nil, err
	}

	client := NewClient(api, logger, opts...)
	client.closer = api.Close
	return client, nil
}

// NewClient wraps an existing APIClient.
func NewClient(api APIClient, logger logging.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	c := &Client{
		api:     api,
		builder: jobs.NewBuilder(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying transport, if the Client owns one.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// HealthCheck checks that the API is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.api.Get(ctx, "/api/health", nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}
