package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/qforge/exambank/constants"
)

// ExtractedOption is one answer choice recovered from a block.
// Order is the stable 0-based position within its parent question.
type ExtractedOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Order     int    `json:"order"`
}

// ExtractedQuestion is the pipeline's output for one block, consumed
// read-only by the import stage. A correction requires re-extraction,
// not an in-place edit.
type ExtractedQuestion struct {
	Stem           string               `json:"stem"`
	Explanation    *string              `json:"explanation,omitempty"`
	Difficulty     constants.Difficulty `json:"difficulty"`
	YearAppeared   *int                 `json:"year_appeared,omitempty"`
	IsPreviousYear bool                 `json:"is_previous_year"`
	// Subject is the inferred subject name; the import stage resolves it
	// to SubjectID when the latter is not already set.
	Subject   *constants.Subject `json:"subject,omitempty"`
	SubjectID *uuid.UUID         `json:"subject_id,omitempty"`
	Options   []ExtractedOption  `json:"options"`
	TagNames  []string           `json:"tag_names,omitempty"`
}

// Question represents a stored question for data transfer between layers.
type Question struct {
	ID             uuid.UUID            `json:"id"`
	Stem           string               `json:"stem"`
	Explanation    *string              `json:"explanation,omitempty"`
	Difficulty     constants.Difficulty `json:"difficulty"`
	YearAppeared   *int                 `json:"year_appeared,omitempty"`
	IsPreviousYear bool                 `json:"is_previous_year"`
	SubjectID      *uuid.UUID           `json:"subject_id,omitempty"`
	TopicID        *uuid.UUID           `json:"topic_id,omitempty"`
	SubtopicID     *uuid.UUID           `json:"subtopic_id,omitempty"`
	Options        []ExtractedOption    `json:"options"`
	TagNames       []string             `json:"tag_names,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
