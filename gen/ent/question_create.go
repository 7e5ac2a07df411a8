// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/question"
	"github.com/qforge/exambank/gen/ent/questionoption"
	"github.com/qforge/exambank/gen/ent/subject"
	"github.com/qforge/exambank/gen/ent/tag"
	"github.com/qforge/exambank/gen/ent/topic"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetStem sets the "stem" field.
func (_c *QuestionCreate) SetStem(v string) *QuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetStemFingerprint sets the "stem_fingerprint" field.
func (_c *QuestionCreate) SetStemFingerprint(v string) *QuestionCreate {
	_c.mutation.SetStemFingerprint(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionCreate) SetExplanation(v string) *QuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v string) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetYearAppeared sets the "year_appeared" field.
func (_c *QuestionCreate) SetYearAppeared(v int) *QuestionCreate {
	_c.mutation.SetYearAppeared(v)
	return _c
}

// SetNillableYearAppeared sets the "year_appeared" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableYearAppeared(v *int) *QuestionCreate {
	if v != nil {
		_c.SetYearAppeared(*v)
	}
	return _c
}

// SetIsPreviousYear sets the "is_previous_year" field.
func (_c *QuestionCreate) SetIsPreviousYear(v bool) *QuestionCreate {
	_c.mutation.SetIsPreviousYear(v)
	return _c
}

// SetNillableIsPreviousYear sets the "is_previous_year" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableIsPreviousYear(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetIsPreviousYear(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *QuestionCreate) SetSubjectID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSubjectID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetSubjectID(*v)
	}
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *QuestionCreate) SetTopicID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTopicID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetSubtopicID sets the "subtopic_id" field.
func (_c *QuestionCreate) SetSubtopicID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetSubtopicID(v)
	return _c
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSubtopicID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetSubtopicID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionCreate) SetUpdatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableUpdatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v uuid.UUID) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableID(v *uuid.UUID) *QuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *QuestionCreate) SetSubject(v *Subject) *QuestionCreate {
	return _c.SetSubjectID(v.ID)
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_c *QuestionCreate) SetTopic(v *Topic) *QuestionCreate {
	return _c.SetTopicID(v.ID)
}

// SetSubtopic sets the "subtopic" edge to the Topic entity.
func (_c *QuestionCreate) SetSubtopic(v *Topic) *QuestionCreate {
	return _c.SetSubtopicID(v.ID)
}

// AddOptionIDs adds the "options" edge to the QuestionOption entity by IDs.
func (_c *QuestionCreate) AddOptionIDs(ids ...uuid.UUID) *QuestionCreate {
	_c.mutation.AddOptionIDs(ids...)
	return _c
}

// AddOptions adds the "options" edges to the QuestionOption entity.
func (_c *QuestionCreate) AddOptions(v ...*QuestionOption) *QuestionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOptionIDs(ids...)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_c *QuestionCreate) AddTagIDs(ids ...uuid.UUID) *QuestionCreate {
	_c.mutation.AddTagIDs(ids...)
	return _c
}

// AddTags adds the "tags" edges to the Tag entity.
func (_c *QuestionCreate) AddTags(v ...*Tag) *QuestionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTagIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.IsPreviousYear(); !ok {
		v := question.DefaultIsPreviousYear
		_c.mutation.SetIsPreviousYear(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := question.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := question.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "Question.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StemFingerprint(); !ok {
		return &ValidationError{Name: "stem_fingerprint", err: errors.New(`ent: missing required field "Question.stem_fingerprint"`)}
	}
	if v, ok := _c.mutation.StemFingerprint(); ok {
		if err := question.StemFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "stem_fingerprint", err: fmt.Errorf(`ent: validator failed for field "Question.stem_fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := question.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPreviousYear(); !ok {
		return &ValidationError{Name: "is_previous_year", err: errors.New(`ent: missing required field "Question.is_previous_year"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Question.updated_at"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.StemFingerprint(); ok {
		_spec.SetField(question.FieldStemFingerprint, field.TypeString, value)
		_node.StemFingerprint = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = &value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.YearAppeared(); ok {
		_spec.SetField(question.FieldYearAppeared, field.TypeInt, value)
		_node.YearAppeared = &value
	}
	if value, ok := _c.mutation.IsPreviousYear(); ok {
		_spec.SetField(question.FieldIsPreviousYear, field.TypeBool, value)
		_node.IsPreviousYear = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_node.SubjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TopicIDs(); len(nodes) > 0 {
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
		_node.TopicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubtopicIDs(); len(nodes) > 0 {
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
		_node.SubtopicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
