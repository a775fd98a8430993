package explain

import (
	"context"
	"strings"
	"testing"

	"github.com/quizdeck/quizdeck/internal/exam"
)

func sampleQuestion() *exam.Question {
	return &exam.Question{
		ID:   "q1",
		Stem: "What is $2^3$?",
		Options: []exam.AnswerOption{
			{ID: "a", Text: "6"},
			{ID: "b", Text: "8"},
		},
		Explanation: "Multiply 2 by itself three times.",
		AnswerID:    "b",
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := buildPrompt(Request{
		Question:   sampleQuestion(),
		SelectedID: "a",
		CorrectID:  "b",
	})
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}

	for _, want := range []string{
		"What is $2^3$?",
		"a) 6",
		"b) 8",
		"Correct answer: b",
		"The student picked: a",
		"Multiply 2 by itself three times.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_CorrectPickOmitsStudentLine(t *testing.T) {
	prompt, err := buildPrompt(Request{
		Question:   sampleQuestion(),
		SelectedID: "b",
		CorrectID:  "b",
	})
	if err != nil {
		t.Fatalf("buildPrompt: %v", err)
	}
	if strings.Contains(prompt, "The student picked") {
		t.Error("student line should be omitted when the pick was correct")
	}
}

func TestBuildPrompt_NilQuestion(t *testing.T) {
	if _, err := buildPrompt(Request{CorrectID: "b"}); err == nil {
		t.Fatal("expected error for nil question")
	}
}

func TestMockExplainer(t *testing.T) {
	m := NewMockExplainer()
	text, err := m.Explain(context.Background(), Request{
		Question:  sampleQuestion(),
		CorrectID: "b",
	})
	if err != nil {
		t.Fatalf("mock explain: %v", err)
	}
	if !strings.Contains(text, "b") {
		t.Errorf("canned response = %q", text)
	}
	if len(m.Calls) != 1 {
		t.Errorf("calls = %d, want 1", len(m.Calls))
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled", Config{}, false},
		{"mock", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"unknown", Config{Provider: "bogus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFactoryDisabled(t *testing.T) {
	e, err := New(context.Background(), Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e != nil {
		t.Fatal("expected nil explainer when disabled")
	}
}
