// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/predicate"
	"github.com/qforge/exambank/gen/ent/question"
	"github.com/qforge/exambank/gen/ent/questionoption"
)

// QuestionOptionUpdate is the builder for updating QuestionOption entities.
type QuestionOptionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionOptionMutation
}

// Where appends a list predicates to the QuestionOptionUpdate builder.
func (_u *QuestionOptionUpdate) Where(ps ...predicate.QuestionOption) *QuestionOptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionOptionUpdate) SetQuestionID(v uuid.UUID) *QuestionOptionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableQuestionID(v *uuid.UUID) *QuestionOptionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionOptionUpdate) SetText(v string) *QuestionOptionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableText(v *string) *QuestionOptionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuestionOptionUpdate) SetIsCorrect(v bool) *QuestionOptionUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableIsCorrect(v *bool) *QuestionOptionUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetOptionOrder sets the "option_order" field.
func (_u *QuestionOptionUpdate) SetOptionOrder(v int) *QuestionOptionUpdate {
	_u.mutation.ResetOptionOrder()
	_u.mutation.SetOptionOrder(v)
	return _u
}

// SetNillableOptionOrder sets the "option_order" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableOptionOrder(v *int) *QuestionOptionUpdate {
	if v != nil {
		_u.SetOptionOrder(*v)
	}
	return _u
}

// AddOptionOrder adds value to the "option_order" field.
func (_u *QuestionOptionUpdate) AddOptionOrder(v int) *QuestionOptionUpdate {
	_u.mutation.AddOptionOrder(v)
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *QuestionOptionUpdate) SetQuestion(v *Question) *QuestionOptionUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuestionOptionMutation object of the builder.
func (_u *QuestionOptionUpdate) Mutation() *QuestionOptionMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *QuestionOptionUpdate) ClearQuestion() *QuestionOptionUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionOptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionOptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := questionoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "QuestionOption.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionOrder(); ok {
		if err := questionoption.OptionOrderValidator(v); err != nil {
			return &ValidationError{Name: "option_order", err: fmt.Errorf(`ent: validator failed for field "QuestionOption.option_order": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuestionOption.question"`)
	}
	return nil
}

func (_u *QuestionOptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoption.Table, questionoption.Columns, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(questionoption.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(questionoption.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OptionOrder(); ok {
		_spec.SetField(questionoption.FieldOptionOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptionOrder(); ok {
		_spec.AddField(questionoption.FieldOptionOrder, field.TypeInt, value)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionOptionUpdateOne is the builder for updating a single QuestionOption entity.
type QuestionOptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionOptionMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionOptionUpdateOne) SetQuestionID(v uuid.UUID) *QuestionOptionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableQuestionID(v *uuid.UUID) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionOptionUpdateOne) SetText(v string) *QuestionOptionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableText(v *string) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuestionOptionUpdateOne) SetIsCorrect(v bool) *QuestionOptionUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableIsCorrect(v *bool) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetOptionOrder sets the "option_order" field.
func (_u *QuestionOptionUpdateOne) SetOptionOrder(v int) *QuestionOptionUpdateOne {
	_u.mutation.ResetOptionOrder()
	_u.mutation.SetOptionOrder(v)
	return _u
}

// SetNillableOptionOrder sets the "option_order" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableOptionOrder(v *int) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetOptionOrder(*v)
	}
	return _u
}

// AddOptionOrder adds value to the "option_order" field.
func (_u *QuestionOptionUpdateOne) AddOptionOrder(v int) *QuestionOptionUpdateOne {
	_u.mutation.AddOptionOrder(v)
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *QuestionOptionUpdateOne) SetQuestion(v *Question) *QuestionOptionUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuestionOptionMutation object of the builder.
func (_u *QuestionOptionUpdateOne) Mutation() *QuestionOptionMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *QuestionOptionUpdateOne) ClearQuestion() *QuestionOptionUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the QuestionOptionUpdate builder.
func (_u *QuestionOptionUpdateOne) Where(ps ...predicate.QuestionOption) *QuestionOptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionOptionUpdateOne) Select(field string, fields ...string) *QuestionOptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionOption entity.
func (_u *QuestionOptionUpdateOne) Save(ctx context.Context) (*QuestionOption, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionUpdateOne) SaveX(ctx context.Context) *QuestionOption {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionOptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := questionoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "QuestionOption.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OptionOrder(); ok {
		if err := questionoption.OptionOrderValidator(v); err != nil {
			return &ValidationError{Name: "option_order", err: fmt.Errorf(`ent: validator failed for field "QuestionOption.option_order": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuestionOption.question"`)
	}
	return nil
}

func (_u *QuestionOptionUpdateOne) sqlSave(ctx context.Context) (_node *QuestionOption, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoption.Table, questionoption.Columns, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionOption.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionoption.FieldID)
		for _, f := range fields {
			if !questionoption.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionoption.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(questionoption.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(questionoption.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OptionOrder(); ok {
		_spec.SetField(questionoption.FieldOptionOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOptionOrder(); ok {
		_spec.AddField(questionoption.FieldOptionOrder, field.TypeInt, value)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuestionOption{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
