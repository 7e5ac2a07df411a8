package extract

import (
	"regexp"
	"strings"

	"github.com/qforge/exambank/internal/entity"
)

// Normalization passes run in a fixed order. Each pass consumes a token
// shape the later passes cannot re-match, so running the normalizer on
// already-normalized text is a no-op.
var (
	reFraction    = regexp.MustCompile(`(\d+)/(\d+)`)
	reSuperscript = regexp.MustCompile(`(\w+)\^(\d+)`)
	reSubscript   = regexp.MustCompile(`([A-Za-z0-9]+)_(\d+)`)
	reSquareRoot  = regexp.MustCompile(`√\(([^)]*)\)`)

	// a greek name preceded by a backslash or a letter is already markup
	// (or part of a longer word) and must not be rewritten again
	reGreekName = regexp.MustCompile(`(?i)(^|[^\\A-Za-z])(alpha|beta|gamma|delta|epsilon|theta|lambda|mu|pi|sigma|phi|omega)\b`)
)

// NormalizeMath rewrites plain-text math fragments into canonical LaTeX
// markup: fractions, exponents, subscripts, square roots, then Greek-letter
// names. Pure transform; order of passes is load-bearing.
func NormalizeMath(s string) string {
	s = reFraction.ReplaceAllString(s, `\frac{$1}{$2}`)
	s = reSuperscript.ReplaceAllString(s, `$1^{$2}`)
	s = reSubscript.ReplaceAllString(s, `${1}_{$2}`)
	s = reSquareRoot.ReplaceAllString(s, `\sqrt{$1}`)
	s = reGreekName.ReplaceAllStringFunc(s, func(m string) string {
		sub := reGreekName.FindStringSubmatch(m)
		return sub[1] + `\` + strings.ToLower(sub[2])
	})
	return s
}

// NormalizeQuestionMath applies NormalizeMath to the stem, the explanation,
// and every option's text.
func NormalizeQuestionMath(q *entity.ExtractedQuestion) {
	q.Stem = NormalizeMath(q.Stem)
	if q.Explanation != nil {
		normalized := NormalizeMath(*q.Explanation)
		q.Explanation = &normalized
	}
	for i := range q.Options {
		q.Options[i].Text = NormalizeMath(q.Options[i].Text)
	}
}
