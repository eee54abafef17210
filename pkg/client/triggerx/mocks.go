package triggerx

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAPIClient is a testify mock of APIClient.
type MockAPIClient struct {
	mock.Mock
}

var _ APIClient = (*MockAPIClient)(nil)

func (m *MockAPIClient) Get(ctx context.Context, path string, out interface{}) error {
	args := m.Called(ctx, path, out)
	return args.Error(0)
}

func (m *MockAPIClient) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

func (m *MockAPIClient) Put(ctx context.Context, path string, body interface{}) error {
	args := m.Called(ctx, path, body)
	return args.Error(0)
}
