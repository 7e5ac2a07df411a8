package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// QuestionOption maps to the public.question_options table.
// option_order is the stable 0-based position within the parent question.
type QuestionOption struct{ ent.Schema }

func (QuestionOption) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "question_options"},
	}
}

func (QuestionOption) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("question_id", uuid.UUID{}),
		field.Text("text").NotEmpty(),
		field.Bool("is_correct").Default(false),
		field.Int("option_order").NonNegative(),
	}
}

func (QuestionOption) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY options -> ONE question (FK: question_options.question_id)
		edge.From("question", Question.Type).
			Ref("options").
			Field("question_id").
			Required().
			Unique(),
	}
}

func (QuestionOption) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id", "option_order").Unique(),
	}
}
