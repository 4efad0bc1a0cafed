package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ARSessionEvent records AR session lifecycle: creation, failure, end.
type ARSessionEvent struct {
	ent.Schema
}

func (ARSessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ARSessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, fail or end"),
		field.String("message").
			Optional().
			Nillable().
			Comment("Classified user-facing message (on fail only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session length in seconds (on end only)"),
	}
}

func (ARSessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
