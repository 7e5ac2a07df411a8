package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/db/ent/schema/utils"
)

type Question struct{ ent.Schema }

func (Question) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "questions"},
	}
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Text("stem").NotEmpty(),
		// normalized stem used for duplicate detection
		field.String("stem_fingerprint").NotEmpty(),
		field.Text("explanation").Optional().Nillable(),
		field.String("difficulty").NotEmpty().
			Validate(utils.EnumValidator(constants.Difficulties()...)),
		field.Int("year_appeared").Optional().Nillable(),
		field.Bool("is_previous_year").Default(false),
		// explicit nullable FKs
		field.UUID("subject_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("topic_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("subtopic_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY questions -> ONE subject (FK: questions.subject_id)
		edge.From("subject", Subject.Type).
			Ref("questions").
			Field("subject_id").
			Unique(),
		// OPTIONAL: MANY questions -> ONE topic (FK: questions.topic_id)
		edge.To("topic", Topic.Type).
			Field("topic_id").
			Unique(),
		// OPTIONAL: MANY questions -> ONE subtopic (FK: questions.subtopic_id)
		edge.To("subtopic", Topic.Type).
			Field("subtopic_id").
			Unique(),
		// ONE question -> MANY options
		edge.To("options", QuestionOption.Type),
		// MANY questions <-> MANY tags
		edge.To("tags", Tag.Type),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stem_fingerprint"),
		index.Fields("difficulty"),
		index.Fields("year_appeared"),
	}
}
