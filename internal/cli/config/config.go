package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/env"
)

type Config struct {
	devMode bool

	// TriggerX API
	apiKey string
	apiURL string

	// Transport
	requestTimeout time.Duration
	maxRetries     int

	// IPFS node used by publish-script
	ipfsAPIURL string
}

var (
	cfg      Config
	validate = validator.New()
)

// Init loads envFile (if it exists) and reads the configuration from the
// environment. Variables already set in the environment win over the file.
func Init(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	loaded := Config{
		devMode:        env.GetEnvBool("TRIGGERX_DEV_MODE", false),
		apiKey:         env.GetEnvString("TRIGGERX_API_KEY", ""),
		apiURL:         env.GetEnvString("TRIGGERX_API_URL", "https://data.triggerx.network"),
		requestTimeout: env.GetEnvDuration("TRIGGERX_REQUEST_TIMEOUT", 10*time.Second),
		maxRetries:     env.GetEnvInt("TRIGGERX_MAX_RETRIES", 3),
		ipfsAPIURL:     env.GetEnvString("IPFS_API_URL", "localhost:5001"),
	}
	if err := loaded.validate(); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

func (c Config) validate() error {
	checks := []struct {
		name  string
		value interface{}
		tag   string
	}{
		{"TRIGGERX_API_URL", c.apiURL, "required,url"},
		{"TRIGGERX_REQUEST_TIMEOUT", c.requestTimeout, "gt=0"},
		{"TRIGGERX_MAX_RETRIES", c.maxRetries, "min=1,max=10"},
		{"IPFS_API_URL", c.ipfsAPIURL, "required"},
	}
	for _, check := range checks {
		if err := validate.Var(check.value, check.tag); err != nil {
			return fmt.Errorf("invalid %s: %w", check.name, err)
		}
	}
	return nil
}

// RequireAPIKey fails when no API key is configured. Only commands that talk
// to the API need one.
func RequireAPIKey() error {
	if cfg.apiKey == "" {
		return fmt.Errorf("TRIGGERX_API_KEY is not set")
	}
	return nil
}

func IsDevMode() bool {
	return cfg.devMode
}

func GetAPIKey() string {
	return cfg.apiKey
}

func GetAPIURL() string {
	return cfg.apiURL
}

func GetRequestTimeout() time.Duration {
	return cfg.requestTimeout
}

func GetMaxRetries() int {
	return cfg.maxRetries
}

func GetIPFSAPIURL() string {
	return cfg.ipfsAPIURL
}
