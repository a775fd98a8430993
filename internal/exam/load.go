package exam

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDeck reads, validates, and parses a deck file.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	deck, err := ParseDeck(data)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return deck, nil
}

// ParseDeck validates raw JSON against the deck schema and unmarshals it.
func ParseDeck(data []byte) (*Deck, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledDeckSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var deck Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("unmarshal deck: %w", err)
	}

	if err := validateDeck(&deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

// validateDeck enforces referential invariants the schema cannot express.
func validateDeck(d *Deck) error {
	seenQ := make(map[string]bool, len(d.Questions))
	for i := range d.Questions {
		q := &d.Questions[i]
		if seenQ[q.ID] {
			return fmt.Errorf("duplicate question ID %q", q.ID)
		}
		seenQ[q.ID] = true

		seenOpt := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seenOpt[o.ID] {
				return fmt.Errorf("question %q: duplicate option ID %q", q.ID, o.ID)
			}
			seenOpt[o.ID] = true
		}

		if q.AnswerID != "" && !seenOpt[q.AnswerID] {
			return fmt.Errorf("question %q: answer_id %q is not an option", q.ID, q.AnswerID)
		}
	}
	return nil
}
