package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge/exambank/internal/entity"
)

func TestNormalizeMath_Fraction(t *testing.T) {
	assert.Equal(t, `\frac{3}{4} of the total`, NormalizeMath("3/4 of the total"))
}

func TestNormalizeMath_Superscript(t *testing.T) {
	assert.Equal(t, `x^{2} + y^{10}`, NormalizeMath("x^2 + y^10"))
}

func TestNormalizeMath_Subscript(t *testing.T) {
	assert.Equal(t, `a_{1} and a_{2}`, NormalizeMath("a_1 and a_2"))
}

func TestNormalizeMath_SquareRoot(t *testing.T) {
	assert.Equal(t, `\sqrt{16} = 4`, NormalizeMath("√(16) = 4"))
}

func TestNormalizeMath_GreekNames(t *testing.T) {
	assert.Equal(t, `\alpha + \beta`, NormalizeMath("alpha + beta"))
	assert.Equal(t, `2 \pi r`, NormalizeMath("2 Pi r"))
}

func TestNormalizeMath_GreekInsideWordUntouched(t *testing.T) {
	assert.Equal(t, "the formula stays", NormalizeMath("the formula stays"))
	assert.Equal(t, "happiness", NormalizeMath("happiness"))
}

func TestNormalizeMath_Idempotent(t *testing.T) {
	inputs := []string{
		"x^2 + 3/4 + √(2) + alpha",
		"v_0 t + 1/2 a t^2",
		"sigma and theta against \\lambda",
	}
	for _, in := range inputs {
		once := NormalizeMath(in)
		assert.Equal(t, once, NormalizeMath(once), "input %q", in)
	}
}

func TestNormalizeQuestionMath_AllFields(t *testing.T) {
	expl := "use 1/2 base times height"
	q := &entity.ExtractedQuestion{
		Stem:        "Find the area if r^2 = 4",
		Explanation: &expl,
		Options: []entity.ExtractedOption{
			{Text: "2 pi", Order: 0},
			{Text: "√(2)", Order: 1},
		},
	}

	NormalizeQuestionMath(q)

	assert.Equal(t, `Find the area if r^{2} = 4`, q.Stem)
	require.NotNil(t, q.Explanation)
	assert.Equal(t, `use \frac{1}{2} base times height`, *q.Explanation)
	assert.Equal(t, `2 \pi`, q.Options[0].Text)
	assert.Equal(t, `\sqrt{2}`, q.Options[1].Text)
}
