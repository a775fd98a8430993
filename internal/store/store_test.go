package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{SessionID: "s1", DeckID: "d1", QuestionID: "q1", AnswerID: "a", Correct: true, CorrectAnswerID: "a", TimeMs: 1200},
		{SessionID: "s1", DeckID: "d1", QuestionID: "q1", AnswerID: "b", Correct: false, CorrectAnswerID: "a", TimeMs: 900},
		{SessionID: "s1", DeckID: "d1", QuestionID: "q2", AnswerID: "c", Correct: true, CorrectAnswerID: "c", TimeMs: 2000},
	}
	for _, e := range events {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append answer event: %v", err)
		}
	}

	correct, total, err := repo.AnswerTotals(ctx)
	if err != nil {
		t.Fatalf("answer totals: %v", err)
	}
	if correct != 2 || total != 3 {
		t.Errorf("totals = %d/%d, want 2/3", correct, total)
	}

	acc, n, err := repo.QuestionAccuracy(ctx, "q1")
	if err != nil {
		t.Fatalf("question accuracy: %v", err)
	}
	if n != 2 || acc != 0.5 {
		t.Errorf("q1 accuracy = %v over %d, want 0.5 over 2", acc, n)
	}
}

func TestCheckEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendCheckEvent(ctx, CheckEventData{
		QuestionID: "q1", AnswerID: "a", Service: "local", Success: true, IsCorrect: true, LatencyMs: 3,
	}); err != nil {
		t.Fatalf("append check event: %v", err)
	}
	if err := repo.AppendCheckEvent(ctx, CheckEventData{
		QuestionID: "q1", AnswerID: "a", Service: "remote", Success: false, LatencyMs: 5001, ErrorMessage: "timeout",
	}); err != nil {
		t.Fatalf("append check event: %v", err)
	}

	stats, err := repo.CheckRequestStats(ctx)
	if err != nil {
		t.Fatalf("check stats: %v", err)
	}
	if stats.Total != 2 || stats.Failed != 1 {
		t.Errorf("stats = %+v, want total 2 failed 1", stats)
	}
	if stats.ByService["local"] != 1 || stats.ByService["remote"] != 1 {
		t.Errorf("by service = %v", stats.ByService)
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", DeckID: "d1", Mode: "strict", Role: "guest", QuestionsTotal: 5,
	}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", DeckID: "d1", QuestionsChecked: 4, CorrectAnswers: 3, DurationSecs: 120,
	}); err != nil {
		t.Fatalf("append end: %v", err)
	}

	summaries, err := repo.SessionSummaries(ctx, 10)
	if err != nil {
		t.Fatalf("session summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1 (start events excluded)", len(summaries))
	}
	got := summaries[0]
	if got.SessionID != "s1" || got.QuestionsChecked != 4 || got.CorrectAnswers != 3 {
		t.Errorf("summary = %+v", got)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  7,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Decks:   map[string]DeckStats{"d1": {Attempts: 4, Correct: 3}},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Data.Decks["d1"].Correct != 3 {
		t.Errorf("snapshot data = %+v", snap.Data)
	}
}
