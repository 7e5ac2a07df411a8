// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/question"
	"github.com/qforge/exambank/gen/ent/questionoption"
)

// QuestionOptionCreate is the builder for creating a QuestionOption entity.
type QuestionOptionCreate struct {
	config
	mutation *QuestionOptionMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionOptionCreate) SetQuestionID(v uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *QuestionOptionCreate) SetText(v string) *QuestionOptionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *QuestionOptionCreate) SetIsCorrect(v bool) *QuestionOptionCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableIsCorrect(v *bool) *QuestionOptionCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetOptionOrder sets the "option_order" field.
func (_c *QuestionOptionCreate) SetOptionOrder(v int) *QuestionOptionCreate {
	_c.mutation.SetOptionOrder(v)
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionOptionCreate) SetID(v uuid.UUID) *QuestionOptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuestionOptionCreate) SetNillableID(v *uuid.UUID) *QuestionOptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *QuestionOptionCreate) SetQuestion(v *Question) *QuestionOptionCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the QuestionOptionMutation object of the builder.
func (_c *QuestionOptionCreate) Mutation() *QuestionOptionMutation {
	return _c.mutation
}

// Save creates the QuestionOption in the database.
func (_c *QuestionOptionCreate) Save(ctx context.Context) (*QuestionOption, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionOptionCreate) SaveX(ctx context.Context) *QuestionOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionOptionCreate) defaults() {
	if _, ok := _c.mutation.IsCorrect(); !ok {
		v := questionoption.DefaultIsCorrect
		_c.mutation.SetIsCorrect(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := questionoption.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionOptionCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionOption.question_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "QuestionOption.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := questionoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "QuestionOption.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "QuestionOption.is_correct"`)}
	}
	if _, ok := _c.mutation.OptionOrder(); !ok {
		return &ValidationError{Name: "option_order", err: errors.New(`ent: missing required field "QuestionOption.option_order"`)}
	}
	if v, ok := _c.mutation.OptionOrder(); ok {
		if err := questionoption.OptionOrderValidator(v); err != nil {
			return &ValidationError{Name: "option_order", err: fmt.Errorf(`ent: validator failed for field "QuestionOption.option_order": %w`, err)}
		}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "QuestionOption.question"`)}
	}
	return nil
}

func (_c *QuestionOptionCreate) sqlSave(ctx context.Context) (*QuestionOption, error) {
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

func (_c *QuestionOptionCreate) createSpec() (*QuestionOption, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionOption{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionoption.Table, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(questionoption.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(questionoption.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.OptionOrder(); ok {
		_spec.SetField(questionoption.FieldOptionOrder, field.TypeInt, value)
		_node.OptionOrder = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionOptionCreateBulk is the builder for creating many QuestionOption entities in bulk.
type QuestionOptionCreateBulk struct {
	config
	err      error
	builders []*QuestionOptionCreate
}

// Save creates the QuestionOption entities in the database.
func (_c *QuestionOptionCreateBulk) Save(ctx context.Context) ([]*QuestionOption, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionOption, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionOptionMutation)
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
func (_c *QuestionOptionCreateBulk) SaveX(ctx context.Context) []*QuestionOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionOptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionOptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
