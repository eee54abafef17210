package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/logging"
)

// RetryConfig controls how many times an operation runs and how long
// Retry waits between runs.
type RetryConfig struct {
	MaxRetries      int           // total attempts, the first one included
	InitialDelay    time.Duration // wait before the second attempt
	MaxDelay        time.Duration
	BackoffFactor   float64
	JitterFactor    float64 // extra random wait, as a fraction of the delay
	LogRetryAttempt bool

	// ShouldRetry, when set, is asked before every further attempt.
	ShouldRetry func(err error, attempt int) bool
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:      3,
		InitialDelay:    500 * time.Millisecond,
		MaxDelay:        5 * time.Second,
		BackoffFactor:   2.0,
		JitterFactor:    0.2,
		LogRetryAttempt: true,
	}
}

func (c *RetryConfig) Validate() error {
	switch {
	case c.MaxRetries < 1:
		return errors.New("MaxRetries must be >= 1")
	case c.InitialDelay <= 0:
		return errors.New("InitialDelay must be positive")
	case c.MaxDelay <= 0:
		return errors.New("MaxDelay must be positive")
	case c.BackoffFactor < 1.0:
		return errors.New("BackoffFactor must be >= 1.0")
	case c.JitterFactor < 0 || c.JitterFactor > 1.0:
		return errors.New("JitterFactor must be between 0.0 and 1.0")
	}
	return nil
}

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent wraps err so that Retry gives up immediately and returns
// err unwrapped. It returns nil for a nil err.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// backoff hands out the wait before each further attempt: exponential
// growth capped at max, plus up to jitter*delay of random extra.
type backoff struct {
	delay  time.Duration
	max    time.Duration
	factor float64
	jitter float64
}

func newBackoff(c *RetryConfig) *backoff {
	return &backoff{delay: c.InitialDelay, max: c.MaxDelay, factor: c.BackoffFactor, jitter: c.JitterFactor}
}

func (b *backoff) next() time.Duration {
	wait := b.delay
	if b.jitter > 0 {
		wait += time.Duration(b.jitter * float64(b.delay) * rand.Float64())
	}
	b.delay = min(time.Duration(float64(b.delay)*b.factor), b.max)
	return wait
}

// Retry runs operation until it succeeds, returns a Permanent error, is
// refused by ShouldRetry, or has used up MaxRetries attempts. A nil
// config means DefaultRetryConfig.
func Retry[T any](ctx context.Context, operation func() (T, error), config *RetryConfig, logger logging.Logger) (T, error) {
	var zero T
	if config == nil {
		config = DefaultRetryConfig()
	} else if err := config.Validate(); err != nil {
		return zero, fmt.Errorf("invalid retry config: %w", err)
	}

	b := newBackoff(config)
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := operation()
		if err == nil {
			return result, nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return zero, perm.err
		}
		if config.ShouldRetry != nil && !config.ShouldRetry(err, attempt) {
			return zero, err
		}
		if attempt >= config.MaxRetries {
			return zero, fmt.Errorf("operation failed after %d attempts: %w", attempt, err)
		}

		wait := b.next()
		if config.LogRetryAttempt && logger != nil {
			logger.Warnf("Attempt %d/%d failed: %v. Retrying in %v...", attempt, config.MaxRetries, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		}
	}
}
