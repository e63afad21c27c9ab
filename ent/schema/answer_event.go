package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a session.
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
			Comment("Links to SessionEvent"),
		field.String("mode").
			NotEmpty().
			Comment("Game mode: age, nationality, team, trivia"),
		field.String("prompt").
			NotEmpty().
			Comment("The question or player shown"),
		field.String("expected").
			Default("").
			Comment("The canonical correct answer"),
		field.String("given").
			Default("").
			Comment("What the player chose or typed"),
		field.Float("score").
			Default(0).
			Comment("Points awarded for this answer"),
		field.Bool("correct").
			Comment("Whether the answer counted as correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
		index.Fields("correct"),
	}
}
