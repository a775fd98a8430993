package store

import (
	"context"
	"time"
)

// AnswerEventData captures a confirmed answer attempt.
type AnswerEventData struct {
	SessionID       string
	DeckID          string
	QuestionID      string
	AnswerID        string
	Correct         bool
	CorrectAnswerID string
	TimeMs          int
}

// CheckEventData captures a single grading request, successful or not.
type CheckEventData struct {
	QuestionID   string
	AnswerID     string
	Service      string
	Success      bool
	IsCorrect    bool
	LatencyMs    int64
	ErrorMessage string
}

// SessionEventData captures a session lifecycle event (start/end).
type SessionEventData struct {
	SessionID        string
	Action           string
	DeckID           string
	Mode             string
	Role             string
	QuestionsTotal   int
	QuestionsChecked int
	CorrectAnswers   int
	DurationSecs     int
}

// SessionSummary is a completed session as read back for the stats view.
type SessionSummary struct {
	SessionID        string
	DeckID           string
	Timestamp        time.Time
	QuestionsChecked int
	CorrectAnswers   int
	DurationSecs     int
}

// CheckStats aggregates the grading request log.
type CheckStats struct {
	Total     int
	Failed    int
	AvgMs     int64
	ByService map[string]int
}

// EventRepo provides append and query access to the practice event log.
type EventRepo interface {
	// AppendAnswerEvent records a confirmed answer attempt.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendCheckEvent records a grading request.
	AppendCheckEvent(ctx context.Context, data CheckEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AnswerTotals returns confirmed correct and total answer counts.
	AnswerTotals(ctx context.Context) (correct, total int, err error)

	// QuestionAccuracy returns the historical accuracy for one question
	// and the number of confirmed attempts behind it.
	QuestionAccuracy(ctx context.Context, questionID string) (float64, int, error)

	// SessionSummaries returns the most recent completed sessions,
	// newest first.
	SessionSummaries(ctx context.Context, limit int) ([]SessionSummary, error)

	// CheckRequestStats aggregates the grading request log.
	CheckRequestStats(ctx context.Context) (CheckStats, error)
}

// SnapshotData captures aggregate practice statistics.
type SnapshotData struct {
	Version int                  `json:"version"`
	Decks   map[string]DeckStats `json:"decks,omitempty"`
}

// DeckStats aggregates confirmed attempts within one deck.
type DeckStats struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// Snapshot is a point-in-time capture of aggregate stats.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages stats snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
