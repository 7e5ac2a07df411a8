package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/qforge/exambank/constants"
)

// BlockError records a per-block extraction failure. Structural skips are
// deliberately absent from this list.
type BlockError struct {
	BlockIndex int    `json:"block_index"`
	Error      string `json:"error"`
}

// ProcessingJob represents one document extraction run for data transfer
// between layers. The orchestrator advances Status and Progress; job
// creation and retrieval belong to the job store.
type ProcessingJob struct {
	ID                 uuid.UUID           `json:"id"`
	Filename           string              `json:"filename"`
	Status             constants.JobStatus `json:"status"`
	Progress           int                 `json:"progress"`
	TotalQuestions     int                 `json:"total_questions"`
	ProcessedQuestions int                 `json:"processed_questions"`
	Errors             []BlockError        `json:"errors,omitempty"`
	Results            []ExtractedQuestion `json:"results,omitempty"`
	// set by the import step that follows extraction: IDs of the persisted
	// questions and the per-record rejections
	QuestionIDs  []string      `json:"question_ids,omitempty"`
	ImportErrors []ImportError `json:"import_errors,omitempty"`
	ErrorMessage *string       `json:"error_message,omitempty"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   *time.Time    `json:"finished_at,omitempty"`
}
