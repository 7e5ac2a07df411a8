package constants

// JobStatus is the canonical status for rows in processing_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusProcessing          JobStatus = "processing"           // accepted, not started
	JobStatusExtractingText      JobStatus = "extracting_text"      // raw text available, metadata inference
	JobStatusParsingQuestions    JobStatus = "parsing_questions"    // segmentation into blocks
	JobStatusProcessingQuestions JobStatus = "processing_questions" // per-block extraction loop
	JobStatusCompleted           JobStatus = "completed"            // terminal success (possibly with block errors)
	JobStatusFailed              JobStatus = "failed"               // terminal whole-document failure
)

// JobStatuses holds the allowed values for the status field in ProcessingJob.
var JobStatuses = []string{
	string(JobStatusProcessing),
	string(JobStatusExtractingText),
	string(JobStatusParsingQuestions),
	string(JobStatusProcessingQuestions),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// Terminal reports whether a status is final.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}
