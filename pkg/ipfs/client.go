package ipfs

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	shell "github.com/ipfs/go-ipfs-api"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/logging"
)

const urlScheme = "ipfs://"

// ScriptPublisher stores dynamic job scripts on IPFS. The URL returned by
// Publish is what goes into a job's script_ipfs_url.
type ScriptPublisher interface {
	Publish(filename string, data []byte) (string, error)
	Fetch(scriptURL string) ([]byte, error)
}

// shellAPI is the subset of the IPFS shell used here.
type shellAPI interface {
	Add(r io.Reader, options ...shell.AddOpts) (string, error)
	Cat(path string) (io.ReadCloser, error)
}

type Client struct {
	config *Config
	logger logging.Logger
	shell  shellAPI
}

var _ ScriptPublisher = (*Client)(nil)

// NewClient connects to the IPFS node described by config.
func NewClient(config *Config, logger logging.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	sh := shell.NewShell(config.APIURL)
	sh.SetTimeout(config.Timeout)

	return newClient(config, logger, sh), nil
}

func newClient(config *Config, logger logging.Logger, sh shellAPI) *Client {
	return &Client{config: config, logger: logger, shell: sh}
}

// Publish uploads a script and returns its ipfs:// URL.
func (c *Client) Publish(filename string, data []byte) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("script %s is empty", filename)
	}

	cid, err := c.shell.Add(bytes.NewReader(data), shell.Pin(c.config.Pin))
	if err != nil {
		return "", fmt.Errorf("failed to add %s to IPFS: %w", filename, err)
	}
	if cid == "" {
		return "", fmt.Errorf("received empty CID from IPFS")
	}

	c.logger.Info("Script published to IPFS", "filename", path.Base(filename), "cid", cid)
	return urlScheme + cid, nil
}

// Fetch downloads a script by ipfs:// URL, /ipfs/ path or bare CID.
func (c *Client) Fetch(scriptURL string) ([]byte, error) {
	cid, err := CIDFromURL(scriptURL)
	if err != nil {
		return nil, err
	}

	rc, err := c.shell.Cat(cid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from IPFS: %w", cid, err)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			c.logger.Warn("Failed to close IPFS reader", "error", err)
		}
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cid, err)
	}
	return data, nil
}

// CIDFromURL extracts the content path from the URL forms scripts are
// referenced by.
func CIDFromURL(scriptURL string) (string, error) {
	s := strings.TrimSpace(scriptURL)
	switch {
	case strings.HasPrefix(s, urlScheme):
		s = strings.TrimPrefix(s, urlScheme)
	case strings.Contains(s, "/ipfs/"):
		s = s[strings.Index(s, "/ipfs/")+len("/ipfs/"):]
	}
	s = strings.Trim(s, "/")
	if s == "" {
		return "", fmt.Errorf("no CID in %q", scriptURL)
	}
	return s, nil
}
