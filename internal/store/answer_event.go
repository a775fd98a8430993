package store

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetDeckID(data.DeckID).
		SetQuestionID(data.QuestionID).
		SetAnswerID(data.AnswerID).
		SetCorrect(data.Correct).
		SetCorrectAnswerID(data.CorrectAnswerID).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerTotals(ctx context.Context) (int, int, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query answer totals: %w", err)
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return correct, len(events), nil
}

func (r *eventRepo) QuestionAccuracy(ctx context.Context, questionID string) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.QuestionID(questionID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query question accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}
