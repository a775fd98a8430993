package store

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/ent"
	"github.com/quizdeck/quizdeck/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetDeckID(data.DeckID).
		SetMode(data.Mode).
		SetRole(data.Role).
		SetQuestionsTotal(data.QuestionsTotal).
		SetQuestionsChecked(data.QuestionsChecked).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionSummaries(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, SessionSummary{
			SessionID:        e.SessionID,
			DeckID:           e.DeckID,
			Timestamp:        e.Timestamp,
			QuestionsChecked: e.QuestionsChecked,
			CorrectAnswers:   e.CorrectAnswers,
			DurationSecs:     e.DurationSecs,
		})
	}
	return summaries, nil
}
