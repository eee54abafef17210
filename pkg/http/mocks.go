package http

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
)

// MockHTTPClient is a mock implementation of the HTTPClientInterface
type MockHTTPClient struct {
	mock.Mock
}

var _ HTTPClientInterface = (*MockHTTPClient)(nil)

// DoWithRetry mocks the DoWithRetry method
func (m *MockHTTPClient) DoWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// Close mocks the Close method
func (m *MockHTTPClient) Close() {
	m.Called()
}
