package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_InlineOptionsNumericKey(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 1.\nWhat is 2 + 2?\n(1) 5 (2) 4 (3) 3 (4) 8\nAns. (2)"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	assert.Equal(t, "What is 2 + 2?", fields.Stem)
	require.Len(t, fields.Options, 4)
	assert.Equal(t, "5", fields.Options[0].Text)
	assert.Equal(t, "4", fields.Options[1].Text)
	assert.Equal(t, "3", fields.Options[2].Text)
	assert.Equal(t, "8", fields.Options[3].Text)
	for i, opt := range fields.Options {
		assert.Equal(t, i, opt.Order)
		assert.Equal(t, i == 1, opt.IsCorrect, "option %d", i)
	}
	assert.Nil(t, fields.Explanation)
}

func TestExtract_LetteredOptionsAlphaKey(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 2.\nPick the even number.\na) 5\nb) 4\nc) 3\nd) 8\nanswer: b"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	assert.Equal(t, "Pick the even number.", fields.Stem)
	require.Len(t, fields.Options, 4)
	assert.False(t, fields.Options[0].IsCorrect)
	assert.True(t, fields.Options[1].IsCorrect)
	assert.False(t, fields.Options[2].IsCorrect)
	assert.False(t, fields.Options[3].IsCorrect)
}

func TestExtract_NumericKeyBeatsAlphaKey(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 3.\nSelect the prime.\n(1) 4 (2) 6 (3) 7 (4) 9\nAns. (3)\nanswer: a"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	require.Len(t, fields.Options, 4)
	assert.False(t, fields.Options[0].IsCorrect)
	assert.True(t, fields.Options[2].IsCorrect)
}

func TestExtract_OutOfRangeKeyLeavesNoCorrect(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 4.\nChoose one.\n(1) 5 (2) 4 (3) 3 (4) 8\nAns. (7)"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	for i, opt := range fields.Options {
		assert.False(t, opt.IsCorrect, "option %d", i)
	}
}

func TestExtract_StrayParenthesizedNumberInStem(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 5.\nGiven a matrix of order (3) compute the determinant value now.\n(1) 0 (2) 1 (3) 2 (4) 4\nAns. (1)"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	require.Len(t, fields.Options, 4)
	assert.Equal(t, "0", fields.Options[0].Text)
	assert.True(t, fields.Options[0].IsCorrect)
}

func TestExtract_MultiLineOptionWrapping(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 6.\nChoose the correct statement about continuity.\n" +
		"a) the function is continuous\neverywhere on the real line\n" +
		"b) the function is discontinuous\nanswer: a"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	require.Len(t, fields.Options, 2)
	assert.Equal(t, "the function is continuous everywhere on the real line", fields.Options[0].Text)
	assert.True(t, fields.Options[0].IsCorrect)
}

func TestExtract_WordedNumberedOptionLines(t *testing.T) {
	e := NewFieldExtractor(nil)
	// renumbered lines defeat the inline scan; the line pass recovers the
	// options and accepts worded bodies, not just digits
	block := "Q. 11.\nHow many sides does a pentagon have?\n(1) five\n(4) four\nAns. (1)"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	require.Len(t, fields.Options, 2)
	assert.Equal(t, "five", fields.Options[0].Text)
	assert.Equal(t, "four", fields.Options[1].Text)
	assert.True(t, fields.Options[0].IsCorrect)
	assert.False(t, fields.Options[1].IsCorrect)
}

func TestExtract_ExplanationSection(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 7.\nWhy is 4 even?\n(1) divisible by 2 (2) it is odd\nAns. (1)\n" +
		"Solution: because it is divisible by 2\n\nNote that this line is outside."

	fields, ok := e.Extract(block)

	require.True(t, ok)
	require.NotNil(t, fields.Explanation)
	assert.Equal(t, "because it is divisible by 2", *fields.Explanation)
}

func TestExtract_AlphaKeyAlsoFillsExplanation(t *testing.T) {
	// "answer:" doubles as an explanation header, so the key letter lands in
	// the explanation field for alpha-keyed blocks.
	e := NewFieldExtractor(nil)
	block := "Q. 8.\nPick the even number.\na) 5\nb) 4\nanswer: b"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	require.NotNil(t, fields.Explanation)
	assert.Equal(t, "b", *fields.Explanation)
}

func TestExtract_SkipsBlockWithoutOptions(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 9.\nA remark about the exam hall that has no options at all."

	fields, ok := e.Extract(block)

	assert.False(t, ok)
	assert.Nil(t, fields)
}

func TestExtract_SkipsBlockWithoutStem(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "(1) 5 (2) 4 (3) 3 (4) 8\nAns. (2)"

	fields, ok := e.Extract(block)

	assert.False(t, ok)
	assert.Nil(t, fields)
}

func TestExtract_NoAnswerKeyLeavesNoCorrect(t *testing.T) {
	e := NewFieldExtractor(nil)
	block := "Q. 10.\nChoose one of the following.\n(1) first (2) second"

	fields, ok := e.Extract(block)

	require.True(t, ok)
	require.Len(t, fields.Options, 2)
	assert.False(t, fields.Options[0].IsCorrect)
	assert.False(t, fields.Options[1].IsCorrect)
}
