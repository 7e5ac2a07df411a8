package constants

import "strings"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

var allDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

// Difficulties holds the allowed values for the difficulty field in Question.
func Difficulties() []string {
	result := make([]string, len(allDifficulties))
	for i, d := range allDifficulties {
		result[i] = string(d)
	}
	return result
}

// CanonicalDifficulty maps free-form input onto a known difficulty label.
func CanonicalDifficulty(input string) (Difficulty, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, d := range allDifficulties {
		if normalized == string(d) {
			return d, true
		}
	}
	return DifficultyMedium, false
}
