// Code generated by ent, DO NOT EDIT.

package questionoption

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/qforge/exambank/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldQuestionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldText, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldIsCorrect, v))
}

// OptionOrder applies equality check predicate on the "option_order" field. It's identical to OptionOrderEQ.
func OptionOrder(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldOptionOrder, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...uuid.UUID) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldQuestionID, vs...))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldContainsFold(FieldText, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldIsCorrect, v))
}

// OptionOrderEQ applies the EQ predicate on the "option_order" field.
func OptionOrderEQ(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldEQ(FieldOptionOrder, v))
}

// OptionOrderNEQ applies the NEQ predicate on the "option_order" field.
func OptionOrderNEQ(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNEQ(FieldOptionOrder, v))
}

// OptionOrderIn applies the In predicate on the "option_order" field.
func OptionOrderIn(vs ...int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldIn(FieldOptionOrder, vs...))
}

// OptionOrderNotIn applies the NotIn predicate on the "option_order" field.
func OptionOrderNotIn(vs ...int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldNotIn(FieldOptionOrder, vs...))
}

// OptionOrderGT applies the GT predicate on the "option_order" field.
func OptionOrderGT(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGT(FieldOptionOrder, v))
}

// OptionOrderGTE applies the GTE predicate on the "option_order" field.
func OptionOrderGTE(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldGTE(FieldOptionOrder, v))
}

// OptionOrderLT applies the LT predicate on the "option_order" field.
func OptionOrderLT(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLT(FieldOptionOrder, v))
}

// OptionOrderLTE applies the LTE predicate on the "option_order" field.
func OptionOrderLTE(v int) predicate.QuestionOption {
	return predicate.QuestionOption(sql.FieldLTE(FieldOptionOrder, v))
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.QuestionOption {
	return predicate.QuestionOption(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionOption) predicate.QuestionOption {
	return predicate.QuestionOption(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionOption) predicate.QuestionOption {
	return predicate.QuestionOption(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionOption) predicate.QuestionOption {
	return predicate.QuestionOption(sql.NotPredicates(p))
}
