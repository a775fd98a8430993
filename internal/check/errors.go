package check

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownQuestion is returned when the grader has no record of the
// question being checked.
var ErrUnknownQuestion = errors.New("unknown question")

// ErrUnavailable indicates the grading backend is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("check service unavailable: %v", e.Err)
	}
	return "check service unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit indicates the backend refused the request with a 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }
