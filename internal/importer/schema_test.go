package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge/exambank/constants"
)

func TestDecodeBatch_Valid(t *testing.T) {
	raw := []byte(`[
		{
			"stem": "Evaluate the integral of x",
			"options": [
				{"text": "x^{2}/2", "is_correct": true, "order": 0},
				{"text": "x", "is_correct": false, "order": 1}
			]
		}
	]`)

	batch, err := DecodeBatch(raw)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "Evaluate the integral of x", batch[0].Stem)
	require.Len(t, batch[0].Options, 2)
	assert.True(t, batch[0].Options[0].IsCorrect)
}

func TestDecodeBatch_DifficultyDefaultedFromStem(t *testing.T) {
	raw := []byte(`[
		{
			"stem": "Evaluate the integral of x",
			"options": [
				{"text": "a", "is_correct": true},
				{"text": "b", "is_correct": false}
			]
		}
	]`)

	batch, err := DecodeBatch(raw)
	require.NoError(t, err)
	assert.Equal(t, constants.DifficultyHard, batch[0].Difficulty)
}

func TestDecodeBatch_RejectsMissingOptions(t *testing.T) {
	_, err := DecodeBatch([]byte(`[{"stem": "No options here"}]`))
	assert.Error(t, err)
}

func TestDecodeBatch_RejectsUnknownField(t *testing.T) {
	raw := []byte(`[
		{
			"stem": "x",
			"points": 4,
			"options": [{"text": "a", "is_correct": true}]
		}
	]`)

	_, err := DecodeBatch(raw)
	assert.Error(t, err)
}

func TestDecodeBatch_RejectsBadDifficulty(t *testing.T) {
	raw := []byte(`[
		{
			"stem": "x",
			"difficulty": "IMPOSSIBLE",
			"options": [{"text": "a", "is_correct": true}]
		}
	]`)

	_, err := DecodeBatch(raw)
	assert.Error(t, err)
}

func TestDecodeBatch_RejectsNonArray(t *testing.T) {
	_, err := DecodeBatch([]byte(`{"stem": "x"}`))
	assert.Error(t, err)
}
