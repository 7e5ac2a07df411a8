package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Topic maps to the public.topics table. A topic with a parent is a subtopic.
type Topic struct{ ent.Schema }

func (Topic) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "topics"},
	}
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("subject_id", uuid.UUID{}),
		field.UUID("parent_id", uuid.UUID{}).Optional().Nillable(),
		field.String("name").
			NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY topics -> ONE subject (FK: topics.subject_id)
		edge.From("subject", Subject.Type).
			Ref("topics").
			Field("subject_id").
			Required().
			Unique(),
		// self reference for subtopics (FK: topics.parent_id)
		edge.To("children", Topic.Type).
			From("parent").
			Field("parent_id").
			Unique(),
	}
}
