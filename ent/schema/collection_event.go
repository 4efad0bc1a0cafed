package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollectionEvent records one sphere-collected event, accepted or not.
// Rejected events (regressing totals) are kept for diagnosis but never
// count toward the total.
type CollectionEvent struct {
	ent.Schema
}

func (CollectionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CollectionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in one scan-screen session"),
		field.Int("total_after").
			Min(0).
			Comment("Caller-authoritative running total carried by the event"),
		field.String("object_name").
			Optional().
			Nillable().
			Comment("Detected object the sphere was attached to, when known"),
		field.Bool("accepted").
			Default(true),
	}
}

func (CollectionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("accepted"),
	}
}
