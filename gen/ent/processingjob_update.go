// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/qforge/exambank/gen/ent/predicate"
	"github.com/qforge/exambank/gen/ent/processingjob"
)

// ProcessingJobUpdate is the builder for updating ProcessingJob entities.
type ProcessingJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdate) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ProcessingJobUpdate) SetFilename(v string) *ProcessingJobUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableFilename(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdate) SetStatus(v string) *ProcessingJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStatus(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ProcessingJobUpdate) SetProgress(v int) *ProcessingJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableProgress(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ProcessingJobUpdate) AddProgress(v int) *ProcessingJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ProcessingJobUpdate) SetTotalQuestions(v int) *ProcessingJobUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableTotalQuestions(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ProcessingJobUpdate) AddTotalQuestions(v int) *ProcessingJobUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetProcessedQuestions sets the "processed_questions" field.
func (_u *ProcessingJobUpdate) SetProcessedQuestions(v int) *ProcessingJobUpdate {
	_u.mutation.ResetProcessedQuestions()
	_u.mutation.SetProcessedQuestions(v)
	return _u
}

// SetNillableProcessedQuestions sets the "processed_questions" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableProcessedQuestions(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetProcessedQuestions(*v)
	}
	return _u
}

// AddProcessedQuestions adds value to the "processed_questions" field.
func (_u *ProcessingJobUpdate) AddProcessedQuestions(v int) *ProcessingJobUpdate {
	_u.mutation.AddProcessedQuestions(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *ProcessingJobUpdate) SetErrors(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *ProcessingJobUpdate) AppendErrors(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *ProcessingJobUpdate) ClearErrors() *ProcessingJobUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// SetResults sets the "results" field.
func (_u *ProcessingJobUpdate) SetResults(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *ProcessingJobUpdate) AppendResults(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *ProcessingJobUpdate) ClearResults() *ProcessingJobUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *ProcessingJobUpdate) SetQuestionIds(v []string) *ProcessingJobUpdate {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *ProcessingJobUpdate) AppendQuestionIds(v []string) *ProcessingJobUpdate {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// ClearQuestionIds clears the value of the "question_ids" field.
func (_u *ProcessingJobUpdate) ClearQuestionIds() *ProcessingJobUpdate {
	_u.mutation.ClearQuestionIds()
	return _u
}

// SetImportErrors sets the "import_errors" field.
func (_u *ProcessingJobUpdate) SetImportErrors(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.SetImportErrors(v)
	return _u
}

// AppendImportErrors appends value to the "import_errors" field.
func (_u *ProcessingJobUpdate) AppendImportErrors(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.AppendImportErrors(v)
	return _u
}

// ClearImportErrors clears the value of the "import_errors" field.
func (_u *ProcessingJobUpdate) ClearImportErrors() *ProcessingJobUpdate {
	_u.mutation.ClearImportErrors()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdate) SetErrorMessage(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorMessage(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdate) ClearErrorMessage() *ProcessingJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdate) SetStartedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ProcessingJobUpdate) SetFinishedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableFinishedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ProcessingJobUpdate) ClearFinishedAt() *ProcessingJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdate) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := processingjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := processingjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(processingjob.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(processingjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(processingjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(processingjob.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(processingjob.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedQuestions(); ok {
		_spec.SetField(processingjob.FieldProcessedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedQuestions(); ok {
		_spec.AddField(processingjob.FieldProcessedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(processingjob.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(processingjob.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(processingjob.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(processingjob.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(processingjob.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldQuestionIds, value)
		})
	}
	if _u.mutation.QuestionIdsCleared() {
		_spec.ClearField(processingjob.FieldQuestionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportErrors(); ok {
		_spec.SetField(processingjob.FieldImportErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImportErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldImportErrors, value)
		})
	}
	if _u.mutation.ImportErrorsCleared() {
		_spec.ClearField(processingjob.FieldImportErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(processingjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(processingjob.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingJobUpdateOne is the builder for updating a single ProcessingJob entity.
type ProcessingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// SetFilename sets the "filename" field.
func (_u *ProcessingJobUpdateOne) SetFilename(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableFilename(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdateOne) SetStatus(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStatus(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ProcessingJobUpdateOne) SetProgress(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableProgress(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *ProcessingJobUpdateOne) AddProgress(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ProcessingJobUpdateOne) SetTotalQuestions(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableTotalQuestions(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ProcessingJobUpdateOne) AddTotalQuestions(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetProcessedQuestions sets the "processed_questions" field.
func (_u *ProcessingJobUpdateOne) SetProcessedQuestions(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetProcessedQuestions()
	_u.mutation.SetProcessedQuestions(v)
	return _u
}

// SetNillableProcessedQuestions sets the "processed_questions" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableProcessedQuestions(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetProcessedQuestions(*v)
	}
	return _u
}

// AddProcessedQuestions adds value to the "processed_questions" field.
func (_u *ProcessingJobUpdateOne) AddProcessedQuestions(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddProcessedQuestions(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *ProcessingJobUpdateOne) SetErrors(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *ProcessingJobUpdateOne) AppendErrors(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *ProcessingJobUpdateOne) ClearErrors() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// SetResults sets the "results" field.
func (_u *ProcessingJobUpdateOne) SetResults(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *ProcessingJobUpdateOne) AppendResults(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *ProcessingJobUpdateOne) ClearResults() *ProcessingJobUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *ProcessingJobUpdateOne) SetQuestionIds(v []string) *ProcessingJobUpdateOne {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *ProcessingJobUpdateOne) AppendQuestionIds(v []string) *ProcessingJobUpdateOne {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// ClearQuestionIds clears the value of the "question_ids" field.
func (_u *ProcessingJobUpdateOne) ClearQuestionIds() *ProcessingJobUpdateOne {
	_u.mutation.ClearQuestionIds()
	return _u
}

// SetImportErrors sets the "import_errors" field.
func (_u *ProcessingJobUpdateOne) SetImportErrors(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.SetImportErrors(v)
	return _u
}

// AppendImportErrors appends value to the "import_errors" field.
func (_u *ProcessingJobUpdateOne) AppendImportErrors(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.AppendImportErrors(v)
	return _u
}

// ClearImportErrors clears the value of the "import_errors" field.
func (_u *ProcessingJobUpdateOne) ClearImportErrors() *ProcessingJobUpdateOne {
	_u.mutation.ClearImportErrors()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdateOne) SetErrorMessage(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorMessage(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdateOne) ClearErrorMessage() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdateOne) SetStartedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ProcessingJobUpdateOne) SetFinishedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ProcessingJobUpdateOne) ClearFinishedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdateOne) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdateOne) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingJobUpdateOne) Select(field string, fields ...string) *ProcessingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingJob entity.
func (_u *ProcessingJobUpdateOne) Save(ctx context.Context) (*ProcessingJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) SaveX(ctx context.Context) *ProcessingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := processingjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Progress(); ok {
		if err := processingjob.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.progress": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessingJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingjob.FieldID)
		for _, f := range fields {
			if !processingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingjob.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(processingjob.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(processingjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(processingjob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(processingjob.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(processingjob.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedQuestions(); ok {
		_spec.SetField(processingjob.FieldProcessedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedQuestions(); ok {
		_spec.AddField(processingjob.FieldProcessedQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(processingjob.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(processingjob.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(processingjob.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(processingjob.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(processingjob.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldQuestionIds, value)
		})
	}
	if _u.mutation.QuestionIdsCleared() {
		_spec.ClearField(processingjob.FieldQuestionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportErrors(); ok {
		_spec.SetField(processingjob.FieldImportErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImportErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldImportErrors, value)
		})
	}
	if _u.mutation.ImportErrorsCleared() {
		_spec.ClearField(processingjob.FieldImportErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(processingjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(processingjob.FieldFinishedAt, field.TypeTime)
	}
	_node = &ProcessingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
