// Package explain generates deeper explanations for checked questions
// using an LLM provider. It is optional: when no provider is configured
// the rest of the application works without it.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizdeck/quizdeck/internal/exam"
)

// Explainer produces a prose explanation for a graded question.
type Explainer interface {
	// Explain returns a step-by-step explanation of why the correct
	// answer is correct, tailored to the answer the user picked.
	Explain(ctx context.Context, req Request) (string, error)

	// ModelID returns the model identifier this explainer uses.
	ModelID() string
}

// Request carries everything the explainer needs about one question.
type Request struct {
	Question   *exam.Question
	SelectedID string
	CorrectID  string
}

const systemPrompt = `You are a tutor reviewing a multiple-choice exam question
with a student. Explain in plain language why the correct answer is correct.
If the student picked a wrong option, briefly say why that option is tempting
but wrong. Keep the explanation under 150 words. Any math should be written
inline with $...$ delimiters using simple TeX (\frac, \sqrt, ^, _).`

// buildPrompt renders the user message for a Request.
func buildPrompt(req Request) (string, error) {
	q := req.Question
	if q == nil {
		return "", fmt.Errorf("explain: nil question")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nOptions:\n", q.Stem)
	for _, opt := range q.Options {
		fmt.Fprintf(&b, "  %s) %s\n", opt.ID, opt.Text)
	}
	fmt.Fprintf(&b, "\nCorrect answer: %s\n", req.CorrectID)
	if req.SelectedID != "" && req.SelectedID != req.CorrectID {
		fmt.Fprintf(&b, "The student picked: %s\n", req.SelectedID)
	}
	if q.Explanation != "" {
		fmt.Fprintf(&b, "\nReference explanation (expand on this): %s\n", q.Explanation)
	}
	return b.String(), nil
}
