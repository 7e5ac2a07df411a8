package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/db/ent/schema/utils"
)

// ProcessingJob maps to the public.processing_jobs table. One row per
// document extraction run; the orchestrator advances status and progress.
type ProcessingJob struct{ ent.Schema }

func (ProcessingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_jobs"},
	}
}

func (ProcessingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("filename").NotEmpty(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("progress").Default(0).Min(0).Max(100),
		field.Int("total_questions").Default(0),
		field.Int("processed_questions").Default(0),
		field.JSON("errors", json.RawMessage{}).Optional(),
		field.JSON("results", json.RawMessage{}).Optional(),
		field.JSON("question_ids", []string{}).Optional(),
		field.JSON("import_errors", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ProcessingJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
	}
}
