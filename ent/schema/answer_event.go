package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a confirmed answer attempt: what was selected, what
// the grader said, and how long the check took. Stale or failed checks do
// not produce answer events; those are visible in the check request log.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("deck_id").
			NotEmpty().
			Comment("Deck the question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question that was answered"),
		field.String("answer_id").
			NotEmpty().
			Comment("Option the user had selected when the check was dispatched"),
		field.Bool("correct").
			Comment("Grader-confirmed correctness"),
		field.String("correct_answer_id").
			Default("").
			Comment("Canonical answer per the grader"),
		field.Int("time_ms").
			Default(0).
			Comment("Time from question display to confirmed check"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
