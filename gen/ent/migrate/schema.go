// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProcessingJobsColumns holds the columns for the "processing_jobs" table.
	ProcessingJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "processed_questions", Type: field.TypeInt, Default: 0},
		{Name: "errors", Type: field.TypeJSON, Nullable: true},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "question_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "import_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ProcessingJobsTable holds the schema information for the "processing_jobs" table.
	ProcessingJobsTable = &schema.Table{
		Name:       "processing_jobs",
		Columns:    ProcessingJobsColumns,
		PrimaryKey: []*schema.Column{ProcessingJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processingjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[2], ProcessingJobsColumns[11]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "stem_fingerprint", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "year_appeared", Type: field.TypeInt, Nullable: true},
		{Name: "is_previous_year", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "topic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "subtopic_id", Type: field.TypeUUID, Nullable: true},
		{Name: "subject_id", Type: field.TypeUUID, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_topics_topic",
				Columns:    []*schema.Column{QuestionsColumns[9]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "questions_topics_subtopic",
				Columns:    []*schema.Column{QuestionsColumns[10]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "questions_subjects_questions",
				Columns:    []*schema.Column{QuestionsColumns[11]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_stem_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2]},
			},
			{
				Name:    "question_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[4]},
			},
			{
				Name:    "question_year_appeared",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[5]},
			},
		},
	}
	// QuestionOptionsColumns holds the columns for the "question_options" table.
	QuestionOptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "is_correct", Type: field.TypeBool, Default: false},
		{Name: "option_order", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeUUID},
	}
	// QuestionOptionsTable holds the schema information for the "question_options" table.
	QuestionOptionsTable = &schema.Table{
		Name:       "question_options",
		Columns:    QuestionOptionsColumns,
		PrimaryKey: []*schema.Column{QuestionOptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_options_questions_options",
				Columns:    []*schema.Column{QuestionOptionsColumns[4]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questionoption_question_id_option_order",
				Unique:  true,
				Columns: []*schema.Column{QuestionOptionsColumns[4], QuestionOptionsColumns[3]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "subject_id", Type: field.TypeUUID},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topics_subjects_topics",
				Columns:    []*schema.Column{TopicsColumns[2]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "topics_topics_children",
				Columns:    []*schema.Column{TopicsColumns[3]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// QuestionTagsColumns holds the columns for the "question_tags" table.
	QuestionTagsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeUUID},
		{Name: "tag_id", Type: field.TypeUUID},
	}
	// QuestionTagsTable holds the schema information for the "question_tags" table.
	QuestionTagsTable = &schema.Table{
		Name:       "question_tags",
		Columns:    QuestionTagsColumns,
		PrimaryKey: []*schema.Column{QuestionTagsColumns[0], QuestionTagsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_tags_question_id",
				Columns:    []*schema.Column{QuestionTagsColumns[0]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "question_tags_tag_id",
				Columns:    []*schema.Column{QuestionTagsColumns[1]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProcessingJobsTable,
		QuestionsTable,
		QuestionOptionsTable,
		SubjectsTable,
		TagsTable,
		TopicsTable,
		QuestionTagsTable,
	}
)

func init() {
	ProcessingJobsTable.Annotation = &entsql.Annotation{
		Table: "processing_jobs",
	}
	QuestionsTable.ForeignKeys[0].RefTable = TopicsTable
	QuestionsTable.ForeignKeys[1].RefTable = TopicsTable
	QuestionsTable.ForeignKeys[2].RefTable = SubjectsTable
	QuestionsTable.Annotation = &entsql.Annotation{
		Table: "questions",
	}
	QuestionOptionsTable.ForeignKeys[0].RefTable = QuestionsTable
	QuestionOptionsTable.Annotation = &entsql.Annotation{
		Table: "question_options",
	}
	SubjectsTable.Annotation = &entsql.Annotation{
		Table: "subjects",
	}
	TagsTable.Annotation = &entsql.Annotation{
		Table: "tags",
	}
	TopicsTable.ForeignKeys[0].RefTable = SubjectsTable
	TopicsTable.ForeignKeys[1].RefTable = TopicsTable
	TopicsTable.Annotation = &entsql.Annotation{
		Table: "topics",
	}
	QuestionTagsTable.ForeignKeys[0].RefTable = QuestionsTable
	QuestionTagsTable.ForeignKeys[1].RefTable = TagsTable
}
