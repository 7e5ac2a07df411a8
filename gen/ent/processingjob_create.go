// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/processingjob"
)

// ProcessingJobCreate is the builder for creating a ProcessingJob entity.
type ProcessingJobCreate struct {
	config
	mutation *ProcessingJobMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ProcessingJobCreate) SetFilename(v string) *ProcessingJobCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingJobCreate) SetStatus(v string) *ProcessingJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *ProcessingJobCreate) SetProgress(v int) *ProcessingJobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableProgress(v *int) *ProcessingJobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ProcessingJobCreate) SetTotalQuestions(v int) *ProcessingJobCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableTotalQuestions(v *int) *ProcessingJobCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetProcessedQuestions sets the "processed_questions" field.
func (_c *ProcessingJobCreate) SetProcessedQuestions(v int) *ProcessingJobCreate {
	_c.mutation.SetProcessedQuestions(v)
	return _c
}

// SetNillableProcessedQuestions sets the "processed_questions" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableProcessedQuestions(v *int) *ProcessingJobCreate {
	if v != nil {
		_c.SetProcessedQuestions(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *ProcessingJobCreate) SetErrors(v json.RawMessage) *ProcessingJobCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetResults sets the "results" field.
func (_c *ProcessingJobCreate) SetResults(v json.RawMessage) *ProcessingJobCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetQuestionIds sets the "question_ids" field.
func (_c *ProcessingJobCreate) SetQuestionIds(v []string) *ProcessingJobCreate {
	_c.mutation.SetQuestionIds(v)
	return _c
}

// SetImportErrors sets the "import_errors" field.
func (_c *ProcessingJobCreate) SetImportErrors(v json.RawMessage) *ProcessingJobCreate {
	_c.mutation.SetImportErrors(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessingJobCreate) SetErrorMessage(v string) *ProcessingJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableErrorMessage(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProcessingJobCreate) SetStartedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableStartedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ProcessingJobCreate) SetFinishedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableFinishedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingJobCreate) SetID(v uuid.UUID) *ProcessingJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableID(v *uuid.UUID) *ProcessingJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_c *ProcessingJobCreate) Mutation() *ProcessingJobMutation {
	return _c.mutation
}

// Save creates the ProcessingJob in the database.
func (_c *ProcessingJobCreate) Save(ctx context.Context) (*ProcessingJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingJobCreate) SaveX(ctx context.Context) *ProcessingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingJobCreate) defaults() {
	if _, ok := _c.mutation.Progress(); !ok {
		v := processingjob.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := processingjob.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.ProcessedQuestions(); !ok {
		v := processingjob.DefaultProcessedQuestions
		_c.mutation.SetProcessedQuestions(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := processingjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processingjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingJobCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ProcessingJob.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := processingjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "ProcessingJob.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := processingjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "ProcessingJob.total_questions"`)}
	}
	if _, ok := _c.mutation.ProcessedQuestions(); !ok {
		return &ValidationError{Name: "processed_questions", err: errors.New(`ent: missing required field "ProcessingJob.processed_questions"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ProcessingJob.started_at"`)}
	}
	return nil
}

func (_c *ProcessingJobCreate) sqlSave(ctx context.Context) (*ProcessingJob, error) {
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

func (_c *ProcessingJobCreate) createSpec() (*ProcessingJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingjob.Table, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(processingjob.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(processingjob.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(processingjob.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.ProcessedQuestions(); ok {
		_spec.SetField(processingjob.FieldProcessedQuestions, field.TypeInt, value)
		_node.ProcessedQuestions = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(processingjob.FieldErrors, field.TypeJSON, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(processingjob.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.QuestionIds(); ok {
		_spec.SetField(processingjob.FieldQuestionIds, field.TypeJSON, value)
		_node.QuestionIds = value
	}
	if value, ok := _c.mutation.ImportErrors(); ok {
		_spec.SetField(processingjob.FieldImportErrors, field.TypeJSON, value)
		_node.ImportErrors = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(processingjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// ProcessingJobCreateBulk is the builder for creating many ProcessingJob entities in bulk.
type ProcessingJobCreateBulk struct {
	config
	err      error
	builders []*ProcessingJobCreate
}

// Save creates the ProcessingJob entities in the database.
func (_c *ProcessingJobCreateBulk) Save(ctx context.Context) ([]*ProcessingJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingJobMutation)
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
func (_c *ProcessingJobCreateBulk) SaveX(ctx context.Context) []*ProcessingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
