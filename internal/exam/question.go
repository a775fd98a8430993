package exam

// AnswerOption is a single selectable answer of a question.
type AnswerOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is one exam question as supplied by a deck. It is immutable for
// the lifetime of the program. Stem, option texts, and explanation are raw
// content strings that may embed $...$ formulas. AnswerID is the answer key
// bundled with the deck; the UI never trusts it for correctness display —
// correctness is what the check service confirms.
type Question struct {
	ID          string         `json:"id"`
	Stem        string         `json:"stem"`
	Options     []AnswerOption `json:"options"`
	Explanation string         `json:"explanation,omitempty"`
	AnswerID    string         `json:"answer_id,omitempty"`
}

// Option returns the option with the given ID.
func (q *Question) Option(id string) (AnswerOption, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return AnswerOption{}, false
}

// HasOption reports whether id names one of the question's options.
func (q *Question) HasOption(id string) bool {
	_, ok := q.Option(id)
	return ok
}

// Deck is an ordered set of questions practiced together.
type Deck struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question returns the question with the given ID.
func (d *Deck) Question(id string) (*Question, bool) {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i], true
		}
	}
	return nil, false
}
