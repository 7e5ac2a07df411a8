// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/predicate"
	"github.com/qforge/exambank/gen/ent/question"
	"github.com/qforge/exambank/gen/ent/questionoption"
	"github.com/qforge/exambank/gen/ent/subject"
	"github.com/qforge/exambank/gen/ent/tag"
	"github.com/qforge/exambank/gen/ent/topic"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStem sets the "stem" field.
func (_u *QuestionUpdate) SetStem(v string) *QuestionUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableStem(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetStemFingerprint sets the "stem_fingerprint" field.
func (_u *QuestionUpdate) SetStemFingerprint(v string) *QuestionUpdate {
	_u.mutation.SetStemFingerprint(v)
	return _u
}

// SetNillableStemFingerprint sets the "stem_fingerprint" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableStemFingerprint(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetStemFingerprint(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdate) SetExplanation(v string) *QuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExplanation(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QuestionUpdate) ClearExplanation() *QuestionUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v string) *QuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetYearAppeared sets the "year_appeared" field.
func (_u *QuestionUpdate) SetYearAppeared(v int) *QuestionUpdate {
	_u.mutation.ResetYearAppeared()
	_u.mutation.SetYearAppeared(v)
	return _u
}

// SetNillableYearAppeared sets the "year_appeared" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableYearAppeared(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetYearAppeared(*v)
	}
	return _u
}

// AddYearAppeared adds value to the "year_appeared" field.
func (_u *QuestionUpdate) AddYearAppeared(v int) *QuestionUpdate {
	_u.mutation.AddYearAppeared(v)
	return _u
}

// ClearYearAppeared clears the value of the "year_appeared" field.
func (_u *QuestionUpdate) ClearYearAppeared() *QuestionUpdate {
	_u.mutation.ClearYearAppeared()
	return _u
}

// SetIsPreviousYear sets the "is_previous_year" field.
func (_u *QuestionUpdate) SetIsPreviousYear(v bool) *QuestionUpdate {
	_u.mutation.SetIsPreviousYear(v)
	return _u
}

// SetNillableIsPreviousYear sets the "is_previous_year" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIsPreviousYear(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetIsPreviousYear(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *QuestionUpdate) SetSubjectID(v uuid.UUID) *QuestionUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubjectID(v *uuid.UUID) *QuestionUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *QuestionUpdate) ClearSubjectID() *QuestionUpdate {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuestionUpdate) SetTopicID(v uuid.UUID) *QuestionUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableTopicID(v *uuid.UUID) *QuestionUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *QuestionUpdate) ClearTopicID() *QuestionUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *QuestionUpdate) SetSubtopicID(v uuid.UUID) *QuestionUpdate {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubtopicID(v *uuid.UUID) *QuestionUpdate {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (_u *QuestionUpdate) ClearSubtopicID() *QuestionUpdate {
	_u.mutation.ClearSubtopicID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuestionUpdate) SetCreatedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCreatedAt(v *time.Time) *QuestionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdate) SetUpdatedAt(v time.Time) *QuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *QuestionUpdate) SetSubject(v *Subject) *QuestionUpdate {
	return _u.SetSubjectID(v.ID)
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *QuestionUpdate) SetTopic(v *Topic) *QuestionUpdate {
	return _u.SetTopicID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Topic entity.
func (_u *QuestionUpdate) SetSubtopic(v *Topic) *QuestionUpdate {
	return _u.SetSubtopicID(v.ID)
}

// AddOptionIDs adds the "options" edge to the QuestionOption entity by IDs.
func (_u *QuestionUpdate) AddOptionIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.AddOptionIDs(ids...)
	return _u
}

// AddOptions adds the "options" edges to the QuestionOption entity.
func (_u *QuestionUpdate) AddOptions(v ...*QuestionOption) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOptionIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *QuestionUpdate) AddTagIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *QuestionUpdate) AddTags(v ...*Tag) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *QuestionUpdate) ClearSubject() *QuestionUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *QuestionUpdate) ClearTopic() *QuestionUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// ClearSubtopic clears the "subtopic" edge to the Topic entity.
func (_u *QuestionUpdate) ClearSubtopic() *QuestionUpdate {
	_u.mutation.ClearSubtopic()
	return _u
}

// ClearOptions clears all "options" edges to the QuestionOption entity.
func (_u *QuestionUpdate) ClearOptions() *QuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// RemoveOptionIDs removes the "options" edge to QuestionOption entities by IDs.
func (_u *QuestionUpdate) RemoveOptionIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.RemoveOptionIDs(ids...)
	return _u
}

// RemoveOptions removes "options" edges to QuestionOption entities.
func (_u *QuestionUpdate) RemoveOptions(v ...*QuestionOption) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOptionIDs(ids...)
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *QuestionUpdate) ClearTags() *QuestionUpdate {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *QuestionUpdate) RemoveTagIDs(ids ...uuid.UUID) *QuestionUpdate {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *QuestionUpdate) RemoveTags(v ...*Tag) *QuestionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StemFingerprint(); ok {
		if err := question.StemFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "stem_fingerprint", err: fmt.Errorf(`ent: validator failed for field "Question.stem_fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.StemFingerprint(); ok {
		_spec.SetField(question.FieldStemFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(question.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearAppeared(); ok {
		_spec.SetField(question.FieldYearAppeared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearAppeared(); ok {
		_spec.AddField(question.FieldYearAppeared, field.TypeInt, value)
	}
	if _u.mutation.YearAppearedCleared() {
		_spec.ClearField(question.FieldYearAppeared, field.TypeInt)
	}
	if value, ok := _u.mutation.IsPreviousYear(); ok {
		_spec.SetField(question.FieldIsPreviousYear, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SubjectTable,
			Columns: []string{question.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SubjectTable,
			Columns: []string{question.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   question.TopicTable,
			Columns: []string{question.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   question.TopicTable,
			Columns: []string{question.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   question.SubtopicTable,
			Columns: []string{question.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   question.SubtopicTable,
			Columns: []string{question.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOptionsIDs(); len(nodes) > 0 && !_u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TagsTable,
			Columns: question.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TagsTable,
			Columns: question.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TagsTable,
			Columns: question.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetStem sets the "stem" field.
func (_u *QuestionUpdateOne) SetStem(v string) *QuestionUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableStem(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetStemFingerprint sets the "stem_fingerprint" field.
func (_u *QuestionUpdateOne) SetStemFingerprint(v string) *QuestionUpdateOne {
	_u.mutation.SetStemFingerprint(v)
	return _u
}

// SetNillableStemFingerprint sets the "stem_fingerprint" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableStemFingerprint(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetStemFingerprint(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuestionUpdateOne) SetExplanation(v string) *QuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExplanation(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *QuestionUpdateOne) ClearExplanation() *QuestionUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v string) *QuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetYearAppeared sets the "year_appeared" field.
func (_u *QuestionUpdateOne) SetYearAppeared(v int) *QuestionUpdateOne {
	_u.mutation.ResetYearAppeared()
	_u.mutation.SetYearAppeared(v)
	return _u
}

// SetNillableYearAppeared sets the "year_appeared" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableYearAppeared(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetYearAppeared(*v)
	}
	return _u
}

// AddYearAppeared adds value to the "year_appeared" field.
func (_u *QuestionUpdateOne) AddYearAppeared(v int) *QuestionUpdateOne {
	_u.mutation.AddYearAppeared(v)
	return _u
}

// ClearYearAppeared clears the value of the "year_appeared" field.
func (_u *QuestionUpdateOne) ClearYearAppeared() *QuestionUpdateOne {
	_u.mutation.ClearYearAppeared()
	return _u
}

// SetIsPreviousYear sets the "is_previous_year" field.
func (_u *QuestionUpdateOne) SetIsPreviousYear(v bool) *QuestionUpdateOne {
	_u.mutation.SetIsPreviousYear(v)
	return _u
}

// SetNillableIsPreviousYear sets the "is_previous_year" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIsPreviousYear(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetIsPreviousYear(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *QuestionUpdateOne) SetSubjectID(v uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubjectID(v *uuid.UUID) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *QuestionUpdateOne) ClearSubjectID() *QuestionUpdateOne {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *QuestionUpdateOne) SetTopicID(v uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableTopicID(v *uuid.UUID) *QuestionUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *QuestionUpdateOne) ClearTopicID() *QuestionUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetSubtopicID sets the "subtopic_id" field.
func (_u *QuestionUpdateOne) SetSubtopicID(v uuid.UUID) *QuestionUpdateOne {
	_u.mutation.SetSubtopicID(v)
	return _u
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubtopicID(v *uuid.UUID) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubtopicID(*v)
	}
	return _u
}

// ClearSubtopicID clears the value of the "subtopic_id" field.
func (_u *QuestionUpdateOne) ClearSubtopicID() *QuestionUpdateOne {
	_u.mutation.ClearSubtopicID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuestionUpdateOne) SetCreatedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCreatedAt(v *time.Time) *QuestionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuestionUpdateOne) SetUpdatedAt(v time.Time) *QuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *QuestionUpdateOne) SetSubject(v *Subject) *QuestionUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *QuestionUpdateOne) SetTopic(v *Topic) *QuestionUpdateOne {
	return _u.SetTopicID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Topic entity.
func (_u *QuestionUpdateOne) SetSubtopic(v *Topic) *QuestionUpdateOne {
	return _u.SetSubtopicID(v.ID)
}

// AddOptionIDs adds the "options" edge to the QuestionOption entity by IDs.
func (_u *QuestionUpdateOne) AddOptionIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.AddOptionIDs(ids...)
	return _u
}

// AddOptions adds the "options" edges to the QuestionOption entity.
func (_u *QuestionUpdateOne) AddOptions(v ...*QuestionOption) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOptionIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *QuestionUpdateOne) AddTagIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *QuestionUpdateOne) AddTags(v ...*Tag) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *QuestionUpdateOne) ClearSubject() *QuestionUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *QuestionUpdateOne) ClearTopic() *QuestionUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// ClearSubtopic clears the "subtopic" edge to the Topic entity.
func (_u *QuestionUpdateOne) ClearSubtopic() *QuestionUpdateOne {
	_u.mutation.ClearSubtopic()
	return _u
}

// ClearOptions clears all "options" edges to the QuestionOption entity.
func (_u *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// RemoveOptionIDs removes the "options" edge to QuestionOption entities by IDs.
func (_u *QuestionUpdateOne) RemoveOptionIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.RemoveOptionIDs(ids...)
	return _u
}

// RemoveOptions removes "options" edges to QuestionOption entities.
func (_u *QuestionUpdateOne) RemoveOptions(v ...*QuestionOption) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOptionIDs(ids...)
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *QuestionUpdateOne) ClearTags() *QuestionUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *QuestionUpdateOne) RemoveTagIDs(ids ...uuid.UUID) *QuestionUpdateOne {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *QuestionUpdateOne) RemoveTags(v ...*Tag) *QuestionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := question.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StemFingerprint(); ok {
		if err := question.StemFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "stem_fingerprint", err: fmt.Errorf(`ent: validator failed for field "Question.stem_fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.StemFingerprint(); ok {
		_spec.SetField(question.FieldStemFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(question.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearAppeared(); ok {
		_spec.SetField(question.FieldYearAppeared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearAppeared(); ok {
		_spec.AddField(question.FieldYearAppeared, field.TypeInt, value)
	}
	if _u.mutation.YearAppearedCleared() {
		_spec.ClearField(question.FieldYearAppeared, field.TypeInt)
	}
	if value, ok := _u.mutation.IsPreviousYear(); ok {
		_spec.SetField(question.FieldIsPreviousYear, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SubjectTable,
			Columns: []string{question.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   question.SubjectTable,
			Columns: []string{question.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   question.TopicTable,
			Columns: []string{question.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   question.TopicTable,
			Columns: []string{question.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubtopicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   question.SubtopicTable,
			Columns: []string{question.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   question.SubtopicTable,
			Columns: []string{question.SubtopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOptionsIDs(); len(nodes) > 0 && !_u.mutation.OptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TagsTable,
			Columns: question.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TagsTable,
			Columns: question.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   question.TagsTable,
			Columns: question.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
