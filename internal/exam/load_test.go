package exam

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDeckJSON = `{
  "id": "algebra-1",
  "title": "Algebra Basics",
  "questions": [
    {
      "id": "q1",
      "stem": "Solve $x + 1 = 3$.",
      "options": [
        {"id": "a", "text": "$x = 1$"},
        {"id": "b", "text": "$x = 2$"}
      ],
      "explanation": "Subtract 1 from both sides.",
      "answer_id": "b"
    }
  ]
}`

func TestParseDeck(t *testing.T) {
	deck, err := ParseDeck([]byte(validDeckJSON))
	if err != nil {
		t.Fatalf("ParseDeck: %v", err)
	}
	if deck.ID != "algebra-1" {
		t.Errorf("ID = %q, want %q", deck.ID, "algebra-1")
	}
	if len(deck.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(deck.Questions))
	}
	q := deck.Questions[0]
	if q.AnswerID != "b" {
		t.Errorf("AnswerID = %q, want %q", q.AnswerID, "b")
	}
	if !q.HasOption("a") || !q.HasOption("b") {
		t.Error("expected options a and b")
	}
}

func TestParseDeckRejects(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name:    "invalid JSON",
			json:    `{not json`,
			wantErr: "invalid JSON",
		},
		{
			name:    "missing title",
			json:    `{"id": "d", "questions": []}`,
			wantErr: "schema validation",
		},
		{
			name:    "no questions",
			json:    `{"id": "d", "title": "T", "questions": []}`,
			wantErr: "schema validation",
		},
		{
			name: "single option",
			json: `{"id": "d", "title": "T", "questions": [
				{"id": "q1", "stem": "S", "options": [{"id": "a", "text": "A"}]}
			]}`,
			wantErr: "schema validation",
		},
		{
			name: "unknown field",
			json: `{"id": "d", "title": "T", "difficulty": 3, "questions": [
				{"id": "q1", "stem": "S", "options": [{"id": "a", "text": "A"}, {"id": "b", "text": "B"}]}
			]}`,
			wantErr: "schema validation",
		},
		{
			name: "duplicate question IDs",
			json: `{"id": "d", "title": "T", "questions": [
				{"id": "q1", "stem": "S", "options": [{"id": "a", "text": "A"}, {"id": "b", "text": "B"}]},
				{"id": "q1", "stem": "S2", "options": [{"id": "a", "text": "A"}, {"id": "b", "text": "B"}]}
			]}`,
			wantErr: "duplicate question ID",
		},
		{
			name: "duplicate option IDs",
			json: `{"id": "d", "title": "T", "questions": [
				{"id": "q1", "stem": "S", "options": [{"id": "a", "text": "A"}, {"id": "a", "text": "B"}]}
			]}`,
			wantErr: "duplicate option ID",
		},
		{
			name: "answer_id not an option",
			json: `{"id": "d", "title": "T", "questions": [
				{"id": "q1", "stem": "S", "options": [{"id": "a", "text": "A"}, {"id": "b", "text": "B"}], "answer_id": "c"}
			]}`,
			wantErr: "is not an option",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeck([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(validDeckJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	deck, err := LoadDeck(path)
	if err != nil {
		t.Fatalf("LoadDeck: %v", err)
	}
	if deck.Title != "Algebra Basics" {
		t.Errorf("Title = %q, want %q", deck.Title, "Algebra Basics")
	}
}

func TestLoadDeckMissingFile(t *testing.T) {
	if _, err := LoadDeck(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSampleDeckIsValid(t *testing.T) {
	deck := SampleDeck()
	if err := validateDeck(deck); err != nil {
		t.Fatalf("sample deck invalid: %v", err)
	}
	if len(deck.Questions) == 0 {
		t.Fatal("sample deck has no questions")
	}
	for _, q := range deck.Questions {
		if q.AnswerID == "" {
			t.Errorf("question %q has no answer key", q.ID)
		}
	}
}
