package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryProvider repeats failed calls with capped exponential backoff. Only
// the preview tool uses it; interactive requests make a single attempt.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

// retryPolicy says how often an error class may be retried.
type retryPolicy int

const (
	retryNever retryPolicy = iota
	retryOnce
	retryAlways
)

// policyFor classifies err. Cancellation and truncation are final; a bad
// reply may be a fluke of sampling and gets one more try.
func policyFor(err error) retryPolicy {
	var maxTok *ErrMaxTokensExceeded
	var invalid *ErrInvalidResponse
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return retryNever
	case errors.As(err, &maxTok):
		return retryNever
	case errors.As(err, &invalid):
		return retryOnce
	default:
		return retryAlways
	}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.config.MaxAttempts, 1)
	retriedInvalid := false

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch policyFor(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if retriedInvalid {
				return nil, err
			}
			retriedInvalid = true
		}
		if attempt == attempts-1 {
			break
		}

		t := time.NewTimer(r.delay(attempt, err))
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// delay is InitialWait*Multiplier^attempt with ±20% jitter, capped at
// MaxWait. A rate limit's RetryAfter replaces the computed value but is
// still capped.
func (r *RetryProvider) delay(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return r.capped(rl.RetryAfter)
	}

	d := float64(r.config.InitialWait)
	for range attempt {
		d *= r.config.Multiplier
	}
	d *= 0.8 + 0.4*rand.Float64()
	return r.capped(time.Duration(d))
}

func (r *RetryProvider) capped(d time.Duration) time.Duration {
	if r.config.MaxWait > 0 && d > r.config.MaxWait {
		return r.config.MaxWait
	}
	return max(d, 0)
}
