package check

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/internal/exam"
)

// LocalService grades against the deck's own answer key. Used when no
// grading endpoint is configured; the app then works fully offline. It
// returns no explanation of its own, so the question's bundled text is what
// the user sees.
type LocalService struct {
	deck *exam.Deck
}

// NewLocalService creates a grader over the given deck.
func NewLocalService(deck *exam.Deck) *LocalService {
	return &LocalService{deck: deck}
}

func (s *LocalService) CheckAnswer(ctx context.Context, questionID, answerID string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, ok := s.deck.Question(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if q.AnswerID == "" {
		return nil, fmt.Errorf("question %s has no answer key", questionID)
	}

	return &Result{
		IsCorrect:       answerID == q.AnswerID,
		CorrectAnswerID: q.AnswerID,
	}, nil
}

func (s *LocalService) Name() string {
	return "local"
}
