package quiz

import "testing"

func TestStoreAnswers(t *testing.T) {
	s := NewStore(RoleSubscriber)

	if _, ok := s.Answer("q1"); ok {
		t.Error("expected no answer in a fresh store")
	}

	s.SetAnswer("q1", "a")
	s.SetAnswer("q2", "c")
	s.SetAnswer("q1", "b") // last write wins

	if ans, ok := s.Answer("q1"); !ok || ans != "b" {
		t.Errorf("Answer(q1) = %q, %v; want b, true", ans, ok)
	}
	if got := s.AnsweredCount(); got != 2 {
		t.Errorf("AnsweredCount = %d, want 2", got)
	}
	if s.Role() != RoleSubscriber {
		t.Errorf("Role = %s, want subscriber", s.Role())
	}
}

func TestStoreReviewMarks(t *testing.T) {
	s := NewStore(RoleGuest)

	if s.MarkedForReview("q1") {
		t.Error("fresh store has a review mark")
	}
	if !s.ToggleReview("q1") {
		t.Error("first toggle should mark")
	}
	if !s.MarkedForReview("q1") {
		t.Error("mark not recorded")
	}
	if s.ToggleReview("q1") {
		t.Error("second toggle should unmark")
	}
	if s.ReviewCount() != 0 {
		t.Errorf("ReviewCount = %d, want 0", s.ReviewCount())
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore(RoleAdmin)
	s.SetAnswer("q1", "a")
	s.ToggleReview("q2")

	s.Clear()

	if s.AnsweredCount() != 0 || s.ReviewCount() != 0 {
		t.Error("Clear left per-question state behind")
	}
	if s.Role() != RoleAdmin {
		t.Error("Clear dropped the role")
	}
}
