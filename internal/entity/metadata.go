package entity

import "github.com/qforge/exambank/constants"

// DocumentMetadata carries provenance inferred once per document from its
// filename. Unresolved fields stay nil. Immutable after inference; attached
// to every question extracted from that document.
type DocumentMetadata struct {
	Year    *int               `json:"year,omitempty"`
	Subject *constants.Subject `json:"subject,omitempty"`
	Shift   *constants.Shift   `json:"shift,omitempty"`
}
