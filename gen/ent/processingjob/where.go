// Code generated by ent, DO NOT EDIT.

package processingjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldFilename, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldStatus, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldProgress, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldTotalQuestions, v))
}

// ProcessedQuestions applies equality check predicate on the "processed_questions" field. It's identical to ProcessedQuestionsEQ.
func ProcessedQuestions(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldProcessedQuestions, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContainsFold(FieldFilename, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContainsFold(FieldStatus, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldProgress, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldTotalQuestions, v))
}

// ProcessedQuestionsEQ applies the EQ predicate on the "processed_questions" field.
func ProcessedQuestionsEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldProcessedQuestions, v))
}

// ProcessedQuestionsNEQ applies the NEQ predicate on the "processed_questions" field.
func ProcessedQuestionsNEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldProcessedQuestions, v))
}

// ProcessedQuestionsIn applies the In predicate on the "processed_questions" field.
func ProcessedQuestionsIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldProcessedQuestions, vs...))
}

// ProcessedQuestionsNotIn applies the NotIn predicate on the "processed_questions" field.
func ProcessedQuestionsNotIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldProcessedQuestions, vs...))
}

// ProcessedQuestionsGT applies the GT predicate on the "processed_questions" field.
func ProcessedQuestionsGT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldProcessedQuestions, v))
}

// ProcessedQuestionsGTE applies the GTE predicate on the "processed_questions" field.
func ProcessedQuestionsGTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldProcessedQuestions, v))
}

// ProcessedQuestionsLT applies the LT predicate on the "processed_questions" field.
func ProcessedQuestionsLT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldProcessedQuestions, v))
}

// ProcessedQuestionsLTE applies the LTE predicate on the "processed_questions" field.
func ProcessedQuestionsLTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldProcessedQuestions, v))
}

// ErrorsIsNil applies the IsNil predicate on the "errors" field.
func ErrorsIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldErrors))
}

// ErrorsNotNil applies the NotNil predicate on the "errors" field.
func ErrorsNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldErrors))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldResults))
}

// QuestionIdsIsNil applies the IsNil predicate on the "question_ids" field.
func QuestionIdsIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldQuestionIds))
}

// QuestionIdsNotNil applies the NotNil predicate on the "question_ids" field.
func QuestionIdsNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldQuestionIds))
}

// ImportErrorsIsNil applies the IsNil predicate on the "import_errors" field.
func ImportErrorsIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldImportErrors))
}

// ImportErrorsNotNil applies the NotNil predicate on the "import_errors" field.
func ImportErrorsNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldImportErrors))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingJob) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingJob) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingJob) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.NotPredicates(p))
}
