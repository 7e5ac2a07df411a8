// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/qforge/exambank/db/ent/schema"
	"github.com/qforge/exambank/gen/ent/processingjob"
	"github.com/qforge/exambank/gen/ent/question"
	"github.com/qforge/exambank/gen/ent/questionoption"
	"github.com/qforge/exambank/gen/ent/subject"
	"github.com/qforge/exambank/gen/ent/tag"
	"github.com/qforge/exambank/gen/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	processingjobFields := schema.ProcessingJob{}.Fields()
	_ = processingjobFields
	// processingjobDescFilename is the schema descriptor for filename field.
	processingjobDescFilename := processingjobFields[1].Descriptor()
	// processingjob.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	processingjob.FilenameValidator = processingjobDescFilename.Validators[0].(func(string) error)
	// processingjobDescStatus is the schema descriptor for status field.
	processingjobDescStatus := processingjobFields[2].Descriptor()
	// processingjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingjob.StatusValidator = func() func(string) error {
		validators := processingjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingjobDescProgress is the schema descriptor for progress field.
	processingjobDescProgress := processingjobFields[3].Descriptor()
	// processingjob.DefaultProgress holds the default value on creation for the progress field.
	processingjob.DefaultProgress = processingjobDescProgress.Default.(int)
	// processingjob.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	processingjob.ProgressValidator = func() func(int) error {
		validators := processingjobDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingjobDescTotalQuestions is the schema descriptor for total_questions field.
	processingjobDescTotalQuestions := processingjobFields[4].Descriptor()
	// processingjob.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	processingjob.DefaultTotalQuestions = processingjobDescTotalQuestions.Default.(int)
	// processingjobDescProcessedQuestions is the schema descriptor for processed_questions field.
	processingjobDescProcessedQuestions := processingjobFields[5].Descriptor()
	// processingjob.DefaultProcessedQuestions holds the default value on creation for the processed_questions field.
	processingjob.DefaultProcessedQuestions = processingjobDescProcessedQuestions.Default.(int)
	// processingjobDescStartedAt is the schema descriptor for started_at field.
	processingjobDescStartedAt := processingjobFields[11].Descriptor()
	// processingjob.DefaultStartedAt holds the default value on creation for the started_at field.
	processingjob.DefaultStartedAt = processingjobDescStartedAt.Default.(func() time.Time)
	// processingjobDescID is the schema descriptor for id field.
	processingjobDescID := processingjobFields[0].Descriptor()
	// processingjob.DefaultID holds the default value on creation for the id field.
	processingjob.DefaultID = processingjobDescID.Default.(func() uuid.UUID)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescStem is the schema descriptor for stem field.
	questionDescStem := questionFields[1].Descriptor()
	// question.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	question.StemValidator = questionDescStem.Validators[0].(func(string) error)
	// questionDescStemFingerprint is the schema descriptor for stem_fingerprint field.
	questionDescStemFingerprint := questionFields[2].Descriptor()
	// question.StemFingerprintValidator is a validator for the "stem_fingerprint" field. It is called by the builders before save.
	question.StemFingerprintValidator = questionDescStemFingerprint.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[4].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = func() func(string) error {
		validators := questionDescDifficulty.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(difficulty string) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescIsPreviousYear is the schema descriptor for is_previous_year field.
	questionDescIsPreviousYear := questionFields[6].Descriptor()
	// question.DefaultIsPreviousYear holds the default value on creation for the is_previous_year field.
	question.DefaultIsPreviousYear = questionDescIsPreviousYear.Default.(bool)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[10].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionFields[11].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	questionoptionFields := schema.QuestionOption{}.Fields()
	_ = questionoptionFields
	// questionoptionDescText is the schema descriptor for text field.
	questionoptionDescText := questionoptionFields[2].Descriptor()
	// questionoption.TextValidator is a validator for the "text" field. It is called by the builders before save.
	questionoption.TextValidator = questionoptionDescText.Validators[0].(func(string) error)
	// questionoptionDescIsCorrect is the schema descriptor for is_correct field.
	questionoptionDescIsCorrect := questionoptionFields[3].Descriptor()
	// questionoption.DefaultIsCorrect holds the default value on creation for the is_correct field.
	questionoption.DefaultIsCorrect = questionoptionDescIsCorrect.Default.(bool)
	// questionoptionDescOptionOrder is the schema descriptor for option_order field.
	questionoptionDescOptionOrder := questionoptionFields[4].Descriptor()
	// questionoption.OptionOrderValidator is a validator for the "option_order" field. It is called by the builders before save.
	questionoption.OptionOrderValidator = questionoptionDescOptionOrder.Validators[0].(func(int) error)
	// questionoptionDescID is the schema descriptor for id field.
	questionoptionDescID := questionoptionFields[0].Descriptor()
	// questionoption.DefaultID holds the default value on creation for the id field.
	questionoption.DefaultID = questionoptionDescID.Default.(func() uuid.UUID)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[1].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	// subjectDescCreatedAt is the schema descriptor for created_at field.
	subjectDescCreatedAt := subjectFields[2].Descriptor()
	// subject.DefaultCreatedAt holds the default value on creation for the created_at field.
	subject.DefaultCreatedAt = subjectDescCreatedAt.Default.(func() time.Time)
	// subjectDescID is the schema descriptor for id field.
	subjectDescID := subjectFields[0].Descriptor()
	// subject.DefaultID holds the default value on creation for the id field.
	subject.DefaultID = subjectDescID.Default.(func() uuid.UUID)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[1].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescID is the schema descriptor for id field.
	tagDescID := tagFields[0].Descriptor()
	// tag.DefaultID holds the default value on creation for the id field.
	tag.DefaultID = tagDescID.Default.(func() uuid.UUID)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[3].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescID is the schema descriptor for id field.
	topicDescID := topicFields[0].Descriptor()
	// topic.DefaultID holds the default value on creation for the id field.
	topic.DefaultID = topicDescID.Default.(func() uuid.UUID)
}
