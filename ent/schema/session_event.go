package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz session lifecycle events (start/end).
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
		field.String("mode").
			NotEmpty().
			Comment("Game mode: bingo, age, nationality, team, trivia"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("questions_answered").
			Default(0).
			Comment("Total questions or placements (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Float("score_percent").
			Default(0).
			Comment("Final score as a 0-100 percentage (on end only)"),
		field.Int("best_streak").
			Default(0).
			Comment("Longest correct streak in the session (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
		index.Fields("action"),
	}
}
