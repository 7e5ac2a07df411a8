package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/qforge/exambank/constants"
)

// Fixed signals; thresholds are not configurable.
var hardKeywords = []string{
	"derivative",
	"integral",
	"matrix",
	"eigenvalue",
	"quantum",
	"thermodynamic",
}

const (
	operatorChars = "+-*/=<>(){}[]"
	hardStemLen   = 200
	mediumStemLen = 100
)

// EstimateDifficulty classifies a stem by domain-keyword and length signals.
func EstimateDifficulty(stem string) constants.Difficulty {
	lower := strings.ToLower(stem)
	length := utf8.RuneCountInString(stem)

	for _, kw := range hardKeywords {
		if strings.Contains(lower, kw) {
			return constants.DifficultyHard
		}
	}
	if length > hardStemLen {
		return constants.DifficultyHard
	}
	if strings.ContainsAny(stem, operatorChars) || length > mediumStemLen {
		return constants.DifficultyMedium
	}
	return constants.DifficultyEasy
}
