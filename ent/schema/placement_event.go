package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlacementEvent records a single bingo board placement attempt.
type PlacementEvent struct {
	ent.Schema
}

func (PlacementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlacementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("player_name").
			NotEmpty().
			Comment("The player being placed"),
		field.String("category_id").
			NotEmpty().
			Comment("The cell the placement was attempted on"),
		field.Bool("correct").
			Comment("Whether the player matched the cell"),
		field.Int("cells_filled").
			Default(0).
			Comment("Cells filled by this placement (correct only)"),
		field.Int("points").
			Default(0).
			Comment("Net points, negative for a burned cell"),
	}
}

func (PlacementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category_id"),
		index.Fields("correct"),
	}
}
