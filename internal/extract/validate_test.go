package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qforge/exambank/internal/entity"
)

func validQuestion() *entity.ExtractedQuestion {
	return &entity.ExtractedQuestion{
		Stem: "What is the speed of light in vacuum?",
		Options: []entity.ExtractedOption{
			{Text: "3x10^8 m/s", IsCorrect: true, Order: 0},
			{Text: "3x10^6 m/s", Order: 1},
		},
	}
}

func TestValidateQuestion_Valid(t *testing.T) {
	assert.Empty(t, ValidateQuestion(validQuestion()))
	assert.Empty(t, ValidateQuestionStrict(validQuestion()))
}

func TestValidateQuestion_MissingStem(t *testing.T) {
	q := validQuestion()
	q.Stem = "   "

	errs := ValidateQuestion(q)

	assert.Equal(t, []string{MsgStemTooShort}, errs)
}

func TestValidateQuestion_TooFewOptions(t *testing.T) {
	q := validQuestion()
	q.Options = q.Options[:1]

	errs := ValidateQuestion(q)

	assert.Equal(t, []string{MsgTooFewOptions}, errs)
}

func TestValidateQuestion_NoCorrectOption(t *testing.T) {
	q := validQuestion()
	q.Options[0].IsCorrect = false

	errs := ValidateQuestion(q)

	assert.Equal(t, []string{MsgNotOneCorrect}, errs)
}

func TestValidateQuestion_TwoCorrectOptions(t *testing.T) {
	q := validQuestion()
	q.Options[1].IsCorrect = true

	errs := ValidateQuestion(q)

	assert.Equal(t, []string{MsgNotOneCorrect}, errs)
}

func TestValidateQuestion_EmptyOptionText(t *testing.T) {
	q := validQuestion()
	q.Options[1].Text = " "

	errs := ValidateQuestion(q)

	assert.Equal(t, []string{MsgEmptyOptionText}, errs)
}

func TestValidateQuestion_AccumulatesFailures(t *testing.T) {
	q := &entity.ExtractedQuestion{Stem: ""}

	errs := ValidateQuestion(q)

	assert.Equal(t, []string{MsgStemTooShort, MsgTooFewOptions, MsgNotOneCorrect}, errs)
}

func TestValidateQuestionStrict_ShortStem(t *testing.T) {
	q := validQuestion()
	q.Stem = "Why?"

	assert.Empty(t, ValidateQuestion(q))
	assert.Equal(t, []string{MsgStemTooShort}, ValidateQuestionStrict(q))
}
