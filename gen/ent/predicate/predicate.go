// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProcessingJob is the predicate function for processingjob builders.
type ProcessingJob func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionOption is the predicate function for questionoption builders.
type QuestionOption func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
