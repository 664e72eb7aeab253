package ai

import (
	"context"
	"log/slog"
	"time"
)

// RetryConfig controls how transient provider failures are retried.
type RetryConfig struct {
	Attempts  int           // total attempts, including the first
	BaseDelay time.Duration // delay before the first retry
	MaxDelay  time.Duration // backoff cap
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts:  3,
		BaseDelay: 2 * time.Second,
		MaxDelay:  10 * time.Second,
	}
}

// Do runs fn up to cfg.Attempts times, doubling the delay between attempts.
// Only transient errors are retried; auth and malformed-response failures
// return immediately.
func Do[T any](ctx context.Context, cfg RetryConfig, logger *slog.Logger, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	delay := cfg.BaseDelay

	var err error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		var out T
		out, err = fn(ctx)
		if err == nil {
			return out, nil
		}
		if !IsTransient(err) || attempt == cfg.Attempts {
			return zero, err
		}

		logger.Warn("ai.retry",
			"op", op,
			"attempt", attempt,
			"max_attempts", cfg.Attempts,
			"delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return zero, err
}
