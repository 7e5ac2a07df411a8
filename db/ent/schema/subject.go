package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Subject maps to the public.subjects table.
type Subject struct{ ent.Schema }

func (Subject) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "subjects"},
	}
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Subject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("topics", Topic.Type),
		edge.To("questions", Question.Type),
	}
}
