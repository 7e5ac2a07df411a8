package extract

import (
	"regexp"
	"strconv"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/internal/entity"
)

// First run of four digits wins; no plausibility check on the value.
var reYear = regexp.MustCompile(`\d{4}`)

// InferMetadata derives provenance from a document filename. Fields that
// cannot be resolved stay nil; inference never fails.
func InferMetadata(filename string) entity.DocumentMetadata {
	var md entity.DocumentMetadata

	if m := reYear.FindString(filename); m != "" {
		if year, err := strconv.Atoi(m); err == nil {
			md.Year = &year
		}
	}
	if subject, ok := constants.SubjectFromToken(filename); ok {
		md.Subject = &subject
	}
	if shift, ok := constants.ShiftFromToken(filename); ok {
		md.Shift = &shift
	}
	return md
}
