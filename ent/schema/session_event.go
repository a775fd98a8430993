package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records practice session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("deck_id").
			NotEmpty().
			Comment("Deck practiced in this session"),
		field.String("mode").
			Default("strict").
			Comment("strict or learning"),
		field.String("role").
			Default("guest").
			Comment("User role for the session"),
		field.Int("questions_total").
			Default(0).
			Comment("Deck size at session start"),
		field.Int("questions_checked").
			Default(0).
			Comment("Confirmed checks (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Confirmed correct answers (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
