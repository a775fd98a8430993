package check

import "context"

// Service validates a selected answer against an authority and returns the
// confirmed outcome. Implementations may be remote (the grading backend) or
// local (the deck's own answer key, offline mode); callers treat both as a
// slow, fallible call and never block on it from the UI loop.
type Service interface {
	// CheckAnswer grades answerID for questionID. A nil error means the
	// grade is authoritative; any error means the attempt must be treated
	// as not checked at all.
	CheckAnswer(ctx context.Context, questionID, answerID string) (*Result, error)

	// Name identifies the implementation for logging.
	Name() string
}

// Result is a confirmed grading outcome.
type Result struct {
	IsCorrect       bool   `json:"is_correct"`
	CorrectAnswerID string `json:"correct_answer_id"`

	// Explanation is the grader's explanation, when it supplies one. Empty
	// means the caller should fall back to the question's bundled text.
	Explanation string `json:"explanation,omitempty"`
}
