package check

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockService(
		MockResponse{Err: &ErrUnavailable{Err: fmt.Errorf("down")}},
		MockResponse{Err: &ErrUnavailable{Err: fmt.Errorf("still down")}},
		MockResponse{Result: &Result{IsCorrect: true, CorrectAnswerID: "b"}},
	)
	s := WithRetry(mock, fastRetryConfig(3))

	res, err := s.CheckAnswer(context.Background(), "q1", "b")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !res.IsCorrect {
		t.Error("expected correct result after retries")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMockService() // empty queue: every call fails with ErrUnavailable
	s := WithRetry(mock, fastRetryConfig(3))

	_, err := s.CheckAnswer(context.Background(), "q1", "b")
	var unavailable *ErrUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryDoesNotRetryUnknownQuestion(t *testing.T) {
	mock := NewMockService(
		MockResponse{Err: fmt.Errorf("%w: q9", ErrUnknownQuestion)},
	)
	s := WithRetry(mock, fastRetryConfig(3))

	_, err := s.CheckAnswer(context.Background(), "q9", "a")
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no retries)", mock.CallCount())
	}
}

func TestRetryDoesNotRetryCancellation(t *testing.T) {
	mock := NewMockService(
		MockResponse{Err: context.Canceled},
	)
	s := WithRetry(mock, fastRetryConfig(3))

	_, err := s.CheckAnswer(context.Background(), "q1", "a")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (no retries)", mock.CallCount())
	}
}

func TestRetryHonorsRateLimitWait(t *testing.T) {
	mock := NewMockService(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 10 * time.Millisecond, Err: fmt.Errorf("HTTP 429")}},
		MockResponse{Result: &Result{IsCorrect: false, CorrectAnswerID: "a"}},
	)
	s := WithRetry(mock, fastRetryConfig(3))

	start := time.Now()
	res, err := s.CheckAnswer(context.Background(), "q1", "b")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if res.CorrectAnswerID != "a" {
		t.Errorf("CorrectAnswerID = %q, want %q", res.CorrectAnswerID, "a")
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("elapsed = %s, want at least the Retry-After wait", elapsed)
	}
}

func TestRetryStopsOnContextDone(t *testing.T) {
	mock := NewMockService() // always ErrUnavailable
	s := WithRetry(mock, RetryConfig{
		MaxAttempts: 5,
		InitialWait: time.Hour, // the wait must be cut short by the context
		MaxWait:     time.Hour,
		Multiplier:  1.0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.CheckAnswer(ctx, "q1", "b")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryPreservesName(t *testing.T) {
	s := WithRetry(NewMockService(), fastRetryConfig(1))
	if s.Name() != "mock" {
		t.Errorf("Name = %q, want %q", s.Name(), "mock")
	}
}
