package ipfs

import (
	"github.com/stretchr/testify/mock"
)

// MockScriptPublisher is a testify mock of ScriptPublisher.
type MockScriptPublisher struct {
	mock.Mock
}

var _ ScriptPublisher = (*MockScriptPublisher)(nil)

func (m *MockScriptPublisher) Publish(filename string, data []byte) (string, error) {
	args := m.Called(filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockScriptPublisher) Fetch(scriptURL string) ([]byte, error) {
	args := m.Called(scriptURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
