package ipfs

import (
	"fmt"
	"strings"
	"time"
)

const DefaultAPIURL = "localhost:5001"

type Config struct {
	// APIURL is the IPFS node HTTP API, "host:port" or a full URL.
	APIURL  string
	Timeout time.Duration
	Pin     bool
}

func NewConfig(apiURL string) *Config {
	if strings.TrimSpace(apiURL) == "" {
		apiURL = DefaultAPIURL
	}
	return &Config{
		APIURL:  apiURL,
		Timeout: 30 * time.Second,
		Pin:     true,
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("APIURL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
