package triggerx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	httppkg "github.com/trigg3rX/triggerx-sdk-go/pkg/http"
	"github.com/trigg3rX/triggerx-sdk-go/pkg/logging"
)

const (
	// DefaultBaseURL is the public TriggerX data API.
	DefaultBaseURL = "https://data.triggerx.network"
	APIKeyHeader   = "X-Api-Key"
)

// APIClient is the authenticated transport the SDK talks through.
// Responses are decoded into out when out is non-nil.
type APIClient interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body interface{}, out interface{}) error
	Put(ctx context.Context, path string, body interface{}) error
}

// HTTPAPIClient implements APIClient over the retrying HTTP client.
type HTTPAPIClient struct {
	logger     logging.Logger
	baseURL    string
	apiKey     string
	httpClient httppkg.HTTPClientInterface
	maxBody    int64
}

var _ APIClient = (*HTTPAPIClient)(nil)

// NewHTTPAPIClient creates an APIClient for baseURL authenticated with apiKey.
func NewHTTPAPIClient(logger logging.Logger, baseURL, apiKey string, httpConfig *httppkg.HTTPRetryConfig) (*HTTPAPIClient, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpConfig == nil {
		httpConfig = httppkg.DefaultHTTPRetryConfig()
	}

	httpClient, err := httppkg.NewHTTPClient(httpConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return newHTTPAPIClient(logger, baseURL, apiKey, httpClient, httpConfig.MaxResponseSize), nil
}

func newHTTPAPIClient(logger logging.Logger, baseURL, apiKey string, httpClient httppkg.HTTPClientInterface, maxBody int64) *HTTPAPIClient {
	return &HTTPAPIClient{
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		maxBody:    maxBody,
	}
}

func (c *HTTPAPIClient) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPAPIClient) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPAPIClient) Put(ctx context.Context, path string, body interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// Close releases idle connections.
func (c *HTTPAPIClient) Close() {
	c.httpClient.Close()
}

func (c *HTTPAPIClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	endpoint := routeLabel(path)
	start := time.Now()
	status := 0
	defer func() {
		observeRequest(method, endpoint, status, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.DoWithRetry(ctx, req)
	if err != nil {
		tErr := &TransportError{Method: method, Path: path, Err: err}
		var httpErr *httppkg.HTTPError
		if errors.As(err, &httpErr) {
			tErr.StatusCode = httpErr.StatusCode
			tErr.Body = httpErr.Body
			status = httpErr.StatusCode
		}
		c.logger.Debug("Request failed", "method", method, "path", path, "error", err)
		return tErr
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
		c.logger.Debug("Request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
