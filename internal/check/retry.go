package check

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig configures backoff for transient grading failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// retryService retries transient errors with exponential backoff and
// jitter. Retrying lives inside the transport: the state machine above it
// sees one attempt that either confirms or fails.
type retryService struct {
	inner Service
	cfg   RetryConfig
}

// WithRetry wraps a Service with retry logic.
func WithRetry(s Service, cfg RetryConfig) Service {
	return &retryService{inner: s, cfg: cfg}
}

func (r *retryService) CheckAnswer(ctx context.Context, questionID, answerID string) (*Result, error) {
	var lastErr error

	for attempt := range r.cfg.MaxAttempts {
		res, err := r.inner.CheckAnswer(ctx, questionID, answerID)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !retryable(err) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retryService) Name() string {
	return r.inner.Name()
}

// retryable reports whether an error is worth another attempt.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// A grader that does not know the question will not learn it by asking again.
	if errors.Is(err, ErrUnknownQuestion) {
		return false
	}
	return true
}

// backoff computes the wait before the next attempt.
func (r *retryService) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if wait > float64(r.cfg.MaxWait) {
		wait = float64(r.cfg.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
