package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/towjek/internal/pkg/logger"
)

// Func is an operation that can be attempted more than once
type Func func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
}

// DefaultConfig suits dependency connections made while the service boots
func DefaultConfig() Config {
	return Config{
		MaxRetries: 5,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Do runs fn until it succeeds, ctx is done, or the retries run out.
// name only labels the log lines.
func Do(ctx context.Context, name string, cfg Config, fn Func) error {
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			if attempt > 0 {
				logger.Info("Operation succeeded after retries",
					logger.String("operation", name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}

		if attempt == cfg.MaxRetries {
			break
		}

		delay := cfg.delay(attempt)
		logger.Warn("Operation failed, retrying",
			logger.String("operation", name),
			logger.Err(lastErr),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("%s: retry limit exceeded after %d attempts: %w", name, cfg.MaxRetries+1, lastErr)
}

// delay computes the exponential backoff for attempt, capped at MaxDelay
func (c Config) delay(attempt int) time.Duration {
	multiplier := c.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	d := time.Duration(float64(c.BaseDelay) * math.Pow(multiplier, float64(attempt)))
	if c.MaxDelay > 0 && d > c.MaxDelay {
		d = c.MaxDelay
	}
	if c.Jitter && d > 0 {
		// +/-25%
		jitter := time.Duration(rand.Int63n(int64(d)/2+1)) - d/4
		d += jitter
	}
	if d < 0 {
		d = 0
	}
	return d
}
