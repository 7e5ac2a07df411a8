package extract

import (
	"strings"

	"github.com/qforge/exambank/internal/entity"
)

// MinStemLength is the bulk-validate minimum stem length after trimming.
const MinStemLength = 10

// Validation messages are part of the API contract.
const (
	MsgStemTooShort    = "Question stem is too short or missing"
	MsgTooFewOptions   = "Question must have at least 2 options"
	MsgNotOneCorrect   = "Question must have exactly one correct option"
	MsgEmptyOptionText = "Question options must have non-empty text"
)

// ValidateQuestion is the pipeline gate: stem present, at least two options,
// exactly one marked correct. Returns the structural failures, empty when
// the record is importable.
func ValidateQuestion(q *entity.ExtractedQuestion) []string {
	return validate(q, 1)
}

// ValidateQuestionStrict is the standalone bulk-validate check; it
// additionally requires a stem of at least MinStemLength characters.
func ValidateQuestionStrict(q *entity.ExtractedQuestion) []string {
	return validate(q, MinStemLength)
}

func validate(q *entity.ExtractedQuestion, minStem int) []string {
	var errs []string

	if len(strings.TrimSpace(q.Stem)) < minStem {
		errs = append(errs, MsgStemTooShort)
	}

	if len(q.Options) < 2 {
		errs = append(errs, MsgTooFewOptions)
	}

	correct := 0
	empty := false
	for _, opt := range q.Options {
		if opt.IsCorrect {
			correct++
		}
		if strings.TrimSpace(opt.Text) == "" {
			empty = true
		}
	}
	if correct != 1 {
		errs = append(errs, MsgNotOneCorrect)
	}
	if empty {
		errs = append(errs, MsgEmptyOptionText)
	}
	return errs
}
