// Package retry provides a small retry mechanism for operations that may
// fail temporarily. It wraps avast/retry-go with exponential backoff and
// functional options for attempts and delays.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic retry on failure.
type Retry interface {
	// Execute runs the operation, retrying on error according to the
	// configured policy. The operation should be idempotent. If ctx is
	// canceled, retrying stops and the context error is returned.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint          // maximum number of attempts, including the first
	delay       time.Duration // base delay before the first retry
	maxDelay    time.Duration // cap on the exponentially growing delay
	lastErrOnly bool          // return only the final attempt's error
}

// Option defines a functional option for configuring the retry policy.
type Option func(*config)

// WithAttempts sets the maximum number of attempts, including the initial
// one. Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay before the first retry. Subsequent delays
// grow exponentially. Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts. Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute returns only the final error
// (true, the default) or all attempt errors combined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry configured with the provided options. Defaults:
// 3 attempts, 1 second base delay, 5 second max delay, last error only.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	)
}
