package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckEvent records a single grading request, successful or not. This is
// the transport-level log; one answer may produce several check events when
// the first attempts fail and the user retries.
type CheckEvent struct {
	ent.Schema
}

func (CheckEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Question that was graded"),
		field.String("answer_id").
			NotEmpty().
			Comment("Option sent to the grader"),
		field.String("service").
			NotEmpty().
			Comment("Grader implementation: local or remote"),
		field.Bool("success").
			Comment("Whether the grader returned a result"),
		field.Bool("is_correct").
			Default(false).
			Comment("Grader verdict (success only)"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Round-trip time including transport retries"),
		field.String("error_message").
			Default("").
			Comment("Failure detail (failure only)"),
	}
}

func (CheckEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("success"),
	}
}
