package entity

// ImportError records one failed record in a batch, keyed by the record's
// original array index.
type ImportError struct {
	Index    int                `json:"index"`
	Error    string             `json:"error"`
	Question *ExtractedQuestion `json:"question,omitempty"`
}

// ImportResult summarizes one import call. Write-once; returned to the
// caller, not persisted (the created question IDs are the durable artifact).
type ImportResult struct {
	Total       int           `json:"total"`
	Successful  int           `json:"successful"`
	Failed      int           `json:"failed"`
	Errors      []ImportError `json:"errors"`
	QuestionIDs []string      `json:"question_ids"`
}

// ValidationIssue lists the structural failures of one record.
type ValidationIssue struct {
	Index  int      `json:"index"`
	Errors []string `json:"errors"`
}

// ValidationReport is the validate-only response; nothing is persisted.
type ValidationReport struct {
	Valid   int               `json:"valid"`
	Invalid int               `json:"invalid"`
	Errors  []ValidationIssue `json:"errors"`
}
