package check

import (
	"context"
	"errors"
	"testing"

	"github.com/quizdeck/quizdeck/internal/exam"
)

func testDeck() *exam.Deck {
	return &exam.Deck{
		ID:    "test-deck",
		Title: "Test Deck",
		Questions: []exam.Question{
			{
				ID:   "q1",
				Stem: "What is $2 + 2$?",
				Options: []exam.AnswerOption{
					{ID: "a", Text: "3"},
					{ID: "b", Text: "4"},
				},
				AnswerID: "b",
			},
			{
				ID:   "q2",
				Stem: "No key here",
				Options: []exam.AnswerOption{
					{ID: "a", Text: "yes"},
					{ID: "b", Text: "no"},
				},
			},
		},
	}
}

func TestLocalServiceCorrect(t *testing.T) {
	s := NewLocalService(testDeck())

	res, err := s.CheckAnswer(context.Background(), "q1", "b")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if !res.IsCorrect {
		t.Error("expected correct")
	}
	if res.CorrectAnswerID != "b" {
		t.Errorf("CorrectAnswerID = %q, want %q", res.CorrectAnswerID, "b")
	}
	if res.Explanation != "" {
		t.Errorf("local grader should not supply an explanation, got %q", res.Explanation)
	}
}

func TestLocalServiceIncorrect(t *testing.T) {
	s := NewLocalService(testDeck())

	res, err := s.CheckAnswer(context.Background(), "q1", "a")
	if err != nil {
		t.Fatalf("CheckAnswer: %v", err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect")
	}
	if res.CorrectAnswerID != "b" {
		t.Errorf("CorrectAnswerID = %q, want %q", res.CorrectAnswerID, "b")
	}
}

func TestLocalServiceUnknownQuestion(t *testing.T) {
	s := NewLocalService(testDeck())

	_, err := s.CheckAnswer(context.Background(), "missing", "a")
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestLocalServiceNoAnswerKey(t *testing.T) {
	s := NewLocalService(testDeck())

	if _, err := s.CheckAnswer(context.Background(), "q2", "a"); err == nil {
		t.Fatal("expected error for question without answer key")
	}
}

func TestLocalServiceCancelledContext(t *testing.T) {
	s := NewLocalService(testDeck())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.CheckAnswer(ctx, "q1", "b"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
