// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// StemFingerprint applies equality check predicate on the "stem_fingerprint" field. It's identical to StemFingerprintEQ.
func StemFingerprint(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStemFingerprint, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// YearAppeared applies equality check predicate on the "year_appeared" field. It's identical to YearAppearedEQ.
func YearAppeared(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldYearAppeared, v))
}

// IsPreviousYear applies equality check predicate on the "is_previous_year" field. It's identical to IsPreviousYearEQ.
func IsPreviousYear(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsPreviousYear, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubjectID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopicID, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubtopicID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStem, v))
}

// StemFingerprintEQ applies the EQ predicate on the "stem_fingerprint" field.
func StemFingerprintEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStemFingerprint, v))
}

// StemFingerprintNEQ applies the NEQ predicate on the "stem_fingerprint" field.
func StemFingerprintNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStemFingerprint, v))
}

// StemFingerprintIn applies the In predicate on the "stem_fingerprint" field.
func StemFingerprintIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStemFingerprint, vs...))
}

// StemFingerprintNotIn applies the NotIn predicate on the "stem_fingerprint" field.
func StemFingerprintNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStemFingerprint, vs...))
}

// StemFingerprintGT applies the GT predicate on the "stem_fingerprint" field.
func StemFingerprintGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStemFingerprint, v))
}

// StemFingerprintGTE applies the GTE predicate on the "stem_fingerprint" field.
func StemFingerprintGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStemFingerprint, v))
}

// StemFingerprintLT applies the LT predicate on the "stem_fingerprint" field.
func StemFingerprintLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStemFingerprint, v))
}

// StemFingerprintLTE applies the LTE predicate on the "stem_fingerprint" field.
func StemFingerprintLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStemFingerprint, v))
}

// StemFingerprintContains applies the Contains predicate on the "stem_fingerprint" field.
func StemFingerprintContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStemFingerprint, v))
}

// StemFingerprintHasPrefix applies the HasPrefix predicate on the "stem_fingerprint" field.
func StemFingerprintHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStemFingerprint, v))
}

// StemFingerprintHasSuffix applies the HasSuffix predicate on the "stem_fingerprint" field.
func StemFingerprintHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStemFingerprint, v))
}

// StemFingerprintEqualFold applies the EqualFold predicate on the "stem_fingerprint" field.
func StemFingerprintEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStemFingerprint, v))
}

// StemFingerprintContainsFold applies the ContainsFold predicate on the "stem_fingerprint" field.
func StemFingerprintContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStemFingerprint, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationIsNil applies the IsNil predicate on the "explanation" field.
func ExplanationIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldExplanation))
}

// ExplanationNotNil applies the NotNil predicate on the "explanation" field.
func ExplanationNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldExplanation))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExplanation, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDifficulty, v))
}

// YearAppearedEQ applies the EQ predicate on the "year_appeared" field.
func YearAppearedEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldYearAppeared, v))
}

// YearAppearedNEQ applies the NEQ predicate on the "year_appeared" field.
func YearAppearedNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldYearAppeared, v))
}

// YearAppearedIn applies the In predicate on the "year_appeared" field.
func YearAppearedIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldYearAppeared, vs...))
}

// YearAppearedNotIn applies the NotIn predicate on the "year_appeared" field.
func YearAppearedNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldYearAppeared, vs...))
}

// YearAppearedGT applies the GT predicate on the "year_appeared" field.
func YearAppearedGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldYearAppeared, v))
}

// YearAppearedGTE applies the GTE predicate on the "year_appeared" field.
func YearAppearedGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldYearAppeared, v))
}

// YearAppearedLT applies the LT predicate on the "year_appeared" field.
func YearAppearedLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldYearAppeared, v))
}

// YearAppearedLTE applies the LTE predicate on the "year_appeared" field.
func YearAppearedLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldYearAppeared, v))
}

// YearAppearedIsNil applies the IsNil predicate on the "year_appeared" field.
func YearAppearedIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldYearAppeared))
}

// YearAppearedNotNil applies the NotNil predicate on the "year_appeared" field.
func YearAppearedNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldYearAppeared))
}

// IsPreviousYearEQ applies the EQ predicate on the "is_previous_year" field.
func IsPreviousYearEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsPreviousYear, v))
}

// IsPreviousYearNEQ applies the NEQ predicate on the "is_previous_year" field.
func IsPreviousYearNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIsPreviousYear, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDIsNil applies the IsNil predicate on the "subject_id" field.
func SubjectIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSubjectID))
}

// SubjectIDNotNil applies the NotNil predicate on the "subject_id" field.
func SubjectIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSubjectID))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDIsNil applies the IsNil predicate on the "topic_id" field.
func TopicIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldTopicID))
}

// TopicIDNotNil applies the NotNil predicate on the "topic_id" field.
func TopicIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldTopicID))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...uuid.UUID) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDIsNil applies the IsNil predicate on the "subtopic_id" field.
func SubtopicIDIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSubtopicID))
}

// SubtopicIDNotNil applies the NotNil predicate on the "subtopic_id" field.
func SubtopicIDNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSubtopicID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSubject applies the HasEdge predicate on the "subject" edge.
func HasSubject() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubjectTable, SubjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubjectWith applies the HasEdge predicate on the "subject" edge with a given conditions (other predicates).
func HasSubjectWith(preds ...predicate.Subject) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newSubjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTopic applies the HasEdge predicate on the "topic" edge.
func HasTopic() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, TopicTable, TopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicWith applies the HasEdge predicate on the "topic" edge with a given conditions (other predicates).
func HasTopicWith(preds ...predicate.Topic) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newTopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubtopic applies the HasEdge predicate on the "subtopic" edge.
func HasSubtopic() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, SubtopicTable, SubtopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubtopicWith applies the HasEdge predicate on the "subtopic" edge with a given conditions (other predicates).
func HasSubtopicWith(preds ...predicate.Topic) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newSubtopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOptions applies the HasEdge predicate on the "options" edge.
func HasOptions() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OptionsTable, OptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOptionsWith applies the HasEdge predicate on the "options" edge with a given conditions (other predicates).
func HasOptionsWith(preds ...predicate.QuestionOption) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newOptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTags applies the HasEdge predicate on the "tags" edge.
func HasTags() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, TagsTable, TagsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTagsWith applies the HasEdge predicate on the "tags" edge with a given conditions (other predicates).
func HasTagsWith(preds ...predicate.Tag) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newTagsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
