package exam

import (
	_ "embed"
)

//go:embed sample_deck.json
var sampleDeckJSON []byte

// SampleDeck returns the built-in practice deck. It is validated at load
// like any other deck; a panic here means the embedded file is broken,
// which is a build defect, not a runtime condition.
func SampleDeck() *Deck {
	deck, err := ParseDeck(sampleDeckJSON)
	if err != nil {
		panic("embedded sample deck invalid: " + err.Error())
	}
	return deck
}
