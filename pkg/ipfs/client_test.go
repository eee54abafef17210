package ipfs

import (
	"errors"
	"io"
	"strings"
	"testing"

	shell "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/logging"
)

type mockShell struct {
	mock.Mock
}

func (m *mockShell) Add(r io.Reader, options ...shell.AddOpts) (string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *mockShell) Cat(path string) (io.ReadCloser, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func newTestClient(sh shellAPI) *Client {
	return newClient(NewConfig(""), logging.NewNoOpLogger(), sh)
}

func TestConfig(t *testing.T) {
	cfg := NewConfig("")
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.True(t, cfg.Pin)
	assert.NoError(t, cfg.Validate())

	cfg.Timeout = 0
	assert.EqualError(t, cfg.Validate(), "timeout must be positive")

	cfg = &Config{Timeout: 1}
	assert.EqualError(t, cfg.Validate(), "APIURL is required")
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{}, nil)
	assert.Error(t, err)
}

func TestPublish_ReturnsIPFSURL(t *testing.T) {
	sh := new(mockShell)
	script := []byte("package main\nfunc main() {}\n")
	sh.On("Add", script).Return("QmScriptCID", nil)

	url, err := newTestClient(sh).Publish("scripts/check.go", script)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://QmScriptCID", url)
	sh.AssertExpectations(t)
}

func TestPublish_Errors(t *testing.T) {
	t.Run("empty filename", func(t *testing.T) {
		_, err := newTestClient(new(mockShell)).Publish("", []byte("x"))
		assert.EqualError(t, err, "filename cannot be empty")
	})

	t.Run("empty script", func(t *testing.T) {
		_, err := newTestClient(new(mockShell)).Publish("a.go", nil)
		assert.EqualError(t, err, "script a.go is empty")
	})

	t.Run("node failure", func(t *testing.T) {
		sh := new(mockShell)
		cause := errors.New("connection refused")
		sh.On("Add", []byte("x")).Return("", cause)

		_, err := newTestClient(sh).Publish("a.go", []byte("x"))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("empty cid", func(t *testing.T) {
		sh := new(mockShell)
		sh.On("Add", []byte("x")).Return("", nil)

		_, err := newTestClient(sh).Publish("a.go", []byte("x"))
		assert.EqualError(t, err, "received empty CID from IPFS")
	})
}

func TestFetch_ReadsContent(t *testing.T) {
	sh := new(mockShell)
	sh.On("Cat", "QmScriptCID").Return(io.NopCloser(strings.NewReader("script body")), nil)

	data, err := newTestClient(sh).Fetch("ipfs://QmScriptCID")
	require.NoError(t, err)
	assert.Equal(t, "script body", string(data))
}

func TestFetch_NodeFailure(t *testing.T) {
	sh := new(mockShell)
	sh.On("Cat", "QmMissing").Return(nil, errors.New("not found"))

	_, err := newTestClient(sh).Fetch("QmMissing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch QmMissing")
}

func TestCIDFromURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "ipfs://QmABC", want: "QmABC"},
		{in: "https://gateway.pinata.cloud/ipfs/QmABC", want: "QmABC"},
		{in: "/ipfs/QmABC/script.go", want: "QmABC/script.go"},
		{in: "QmABC", want: "QmABC"},
		{in: "ipfs://", wantErr: true},
		{in: "  ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CIDFromURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
