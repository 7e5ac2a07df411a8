package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qforge/exambank/constants"
)

func TestEstimateDifficulty_HardKeyword(t *testing.T) {
	assert.Equal(t, constants.DifficultyHard, EstimateDifficulty("Evaluate the integral of f"))
	assert.Equal(t, constants.DifficultyHard, EstimateDifficulty("State the Quantum numbers"))
}

func TestEstimateDifficulty_HardKeywordBeatsShortLength(t *testing.T) {
	// keyword check runs before the length check
	assert.Equal(t, constants.DifficultyHard, EstimateDifficulty("matrix"))
}

func TestEstimateDifficulty_LongStem(t *testing.T) {
	stem := strings.Repeat("a", 201)
	assert.Equal(t, constants.DifficultyHard, EstimateDifficulty(stem))
}

func TestEstimateDifficulty_LengthBoundaries(t *testing.T) {
	// 200 runes is not hard, 101 runes is not easy, 100 runes plain is easy
	assert.Equal(t, constants.DifficultyMedium, EstimateDifficulty(strings.Repeat("a", 200)))
	assert.Equal(t, constants.DifficultyMedium, EstimateDifficulty(strings.Repeat("a", 101)))
	assert.Equal(t, constants.DifficultyEasy, EstimateDifficulty(strings.Repeat("a", 100)))
}

func TestEstimateDifficulty_OperatorPresence(t *testing.T) {
	assert.Equal(t, constants.DifficultyMedium, EstimateDifficulty("what is x + y"))
	assert.Equal(t, constants.DifficultyEasy, EstimateDifficulty("name the capital city"))
}

func TestEstimateDifficulty_RunesNotBytes(t *testing.T) {
	// 100 multibyte runes must stay easy even though the byte length exceeds
	// the medium threshold
	stem := strings.Repeat("α", 100)
	assert.Equal(t, constants.DifficultyEasy, EstimateDifficulty(stem))
}
