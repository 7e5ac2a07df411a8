package constants

import "strings"

type Subject string

const (
	Mathematics Subject = "Mathematics"
	Physics     Subject = "Physics"
	Chemistry   Subject = "Chemistry"
)

var allSubjects = []Subject{
	Mathematics,
	Physics,
	Chemistry,
}

// SubjectNames returns the canonical subject names, in stable order.
func SubjectNames() []string {
	result := make([]string, len(allSubjects))
	for i, s := range allSubjects {
		result[i] = string(s)
	}
	return result
}

// subjectTokens maps lowercase filename tokens to a subject.
// Iterated in this fixed order; first match wins.
var subjectTokens = []struct {
	token   string
	subject Subject
}{
	{"mathematics", Mathematics},
	{"maths", Mathematics},
	{"physics", Physics},
	{"chemistry", Chemistry},
}

// SubjectFromToken resolves a case-insensitive substring of a filename
// to a subject. First matching token wins; no conflict detection.
func SubjectFromToken(s string) (Subject, bool) {
	lower := strings.ToLower(s)
	for _, st := range subjectTokens {
		if strings.Contains(lower, st.token) {
			return st.subject, true
		}
	}
	return "", false
}

type Shift string

const (
	ShiftMorning Shift = "Morning"
	ShiftEvening Shift = "Evening"
)

// ShiftFromToken resolves a case-insensitive substring of a filename to a shift.
func ShiftFromToken(s string) (Shift, bool) {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "morning"):
		return ShiftMorning, true
	case strings.Contains(lower, "evening"):
		return ShiftEvening, true
	}
	return "", false
}
