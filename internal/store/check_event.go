package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendCheckEvent(ctx context.Context, data CheckEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CheckEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetAnswerID(data.AnswerID).
		SetService(data.Service).
		SetSuccess(data.Success).
		SetIsCorrect(data.IsCorrect).
		SetLatencyMs(data.LatencyMs).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save check event: %w", err)
	}
	return nil
}

func (r *eventRepo) CheckRequestStats(ctx context.Context) (CheckStats, error) {
	events, err := r.client.CheckEvent.Query().All(ctx)
	if err != nil {
		return CheckStats{}, fmt.Errorf("query check events: %w", err)
	}

	stats := CheckStats{ByService: make(map[string]int)}
	var totalMs int64
	for _, e := range events {
		stats.Total++
		if !e.Success {
			stats.Failed++
		}
		totalMs += e.LatencyMs
		stats.ByService[e.Service]++
	}
	if stats.Total > 0 {
		stats.AvgMs = totalMs / int64(stats.Total)
	}
	return stats, nil
}
