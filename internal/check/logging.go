package check

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quizdeck/quizdeck/internal/store"
)

// loggingService records every check request as an event, whether it
// succeeded or not. Stale-response discards happen above this layer and are
// deliberately not logged as failures.
type loggingService struct {
	inner Service
	repo  store.EventRepo
}

// WithLogging wraps a Service with event logging.
func WithLogging(s Service, repo store.EventRepo) Service {
	return &loggingService{inner: s, repo: repo}
}

func (l *loggingService) CheckAnswer(ctx context.Context, questionID, answerID string) (*Result, error) {
	start := time.Now()
	res, err := l.inner.CheckAnswer(ctx, questionID, answerID)

	data := store.CheckEventData{
		QuestionID: questionID,
		AnswerID:   answerID,
		Service:    l.inner.Name(),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if res != nil {
		data.IsCorrect = res.IsCorrect
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but never fail the check over it.
	if logErr := l.repo.AppendCheckEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log check event: %v\n", logErr)
	}

	return res, err
}

func (l *loggingService) Name() string {
	return l.inner.Name()
}
