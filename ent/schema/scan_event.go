package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScanEvent records one completed detection pass.
type ScanEvent struct {
	ent.Schema
}

func (ScanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in one scan-screen session"),
		field.Int("anchors_created").
			Min(0).
			Default(0),
		field.Int("objects_detected").
			Min(0).
			Default(0),
	}
}

func (ScanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
