// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/question"
	"github.com/qforge/exambank/gen/ent/subject"
	"github.com/qforge/exambank/gen/ent/topic"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// StemFingerprint holds the value of the "stem_fingerprint" field.
	StemFingerprint string `json:"stem_fingerprint,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation *string `json:"explanation,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// YearAppeared holds the value of the "year_appeared" field.
	YearAppeared *int `json:"year_appeared,omitempty"`
	// IsPreviousYear holds the value of the "is_previous_year" field.
	IsPreviousYear bool `json:"is_previous_year,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID *uuid.UUID `json:"topic_id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID *uuid.UUID `json:"subtopic_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges        QuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Subject holds the value of the subject edge.
	Subject *Subject `json:"subject,omitempty"`
	// Topic holds the value of the topic edge.
	Topic *Topic `json:"topic,omitempty"`
	// Subtopic holds the value of the subtopic edge.
	Subtopic *Topic `json:"subtopic,omitempty"`
	// Options holds the value of the options edge.
	Options []*QuestionOption `json:"options,omitempty"`
	// Tags holds the value of the tags edge.
	Tags []*Tag `json:"tags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// SubjectOrErr returns the Subject value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) SubjectOrErr() (*Subject, error) {
	if e.Subject != nil {
		return e.Subject, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subject.Label}
	}
	return nil, &NotLoadedError{edge: "subject"}
}

// TopicOrErr returns the Topic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) TopicOrErr() (*Topic, error) {
	if e.Topic != nil {
		return e.Topic, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: topic.Label}
	}
	return nil, &NotLoadedError{edge: "topic"}
}

// SubtopicOrErr returns the Subtopic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionEdges) SubtopicOrErr() (*Topic, error) {
	if e.Subtopic != nil {
		return e.Subtopic, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: topic.Label}
	}
	return nil, &NotLoadedError{edge: "subtopic"}
}

// OptionsOrErr returns the Options value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) OptionsOrErr() ([]*QuestionOption, error) {
	if e.loadedTypes[3] {
		return e.Options, nil
	}
	return nil, &NotLoadedError{edge: "options"}
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) TagsOrErr() ([]*Tag, error) {
	if e.loadedTypes[4] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldSubjectID, question.FieldTopicID, question.FieldSubtopicID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case question.FieldIsPreviousYear:
			values[i] = new(sql.NullBool)
		case question.FieldYearAppeared:
			values[i] = new(sql.NullInt64)
		case question.FieldStem, question.FieldStemFingerprint, question.FieldExplanation, question.FieldDifficulty:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt, question.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case question.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case question.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case question.FieldStemFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem_fingerprint", values[i])
			} else if value.Valid {
				_m.StemFingerprint = value.String
			}
		case question.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = new(string)
				*_m.Explanation = value.String
			}
		case question.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case question.FieldYearAppeared:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year_appeared", values[i])
			} else if value.Valid {
				_m.YearAppeared = new(int)
				*_m.YearAppeared = int(value.Int64)
			}
		case question.FieldIsPreviousYear:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_previous_year", values[i])
			} else if value.Valid {
				_m.IsPreviousYear = value.Bool
			}
		case question.FieldSubjectID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = new(uuid.UUID)
				*_m.SubjectID = *value.S.(*uuid.UUID)
			}
		case question.FieldTopicID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = new(uuid.UUID)
				*_m.TopicID = *value.S.(*uuid.UUID)
			}
		case question.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				_m.SubtopicID = new(uuid.UUID)
				*_m.SubtopicID = *value.S.(*uuid.UUID)
			}
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case question.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubject queries the "subject" edge of the Question entity.
func (_m *Question) QuerySubject() *SubjectQuery {
	return NewQuestionClient(_m.config).QuerySubject(_m)
}

// QueryTopic queries the "topic" edge of the Question entity.
func (_m *Question) QueryTopic() *TopicQuery {
	return NewQuestionClient(_m.config).QueryTopic(_m)
}

// QuerySubtopic queries the "subtopic" edge of the Question entity.
func (_m *Question) QuerySubtopic() *TopicQuery {
	return NewQuestionClient(_m.config).QuerySubtopic(_m)
}

// QueryOptions queries the "options" edge of the Question entity.
func (_m *Question) QueryOptions() *QuestionOptionQuery {
	return NewQuestionClient(_m.config).QueryOptions(_m)
}

// QueryTags queries the "tags" edge of the Question entity.
func (_m *Question) QueryTags() *TagQuery {
	return NewQuestionClient(_m.config).QueryTags(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("stem_fingerprint=")
	builder.WriteString(_m.StemFingerprint)
	builder.WriteString(", ")
	if v := _m.Explanation; v != nil {
		builder.WriteString("explanation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	if v := _m.YearAppeared; v != nil {
		builder.WriteString("year_appeared=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_previous_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPreviousYear))
	builder.WriteString(", ")
	if v := _m.SubjectID; v != nil {
		builder.WriteString("subject_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TopicID; v != nil {
		builder.WriteString("topic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SubtopicID; v != nil {
		builder.WriteString("subtopic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
