package utils

import (
	"encoding/json"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/gen/ent"
	"github.com/qforge/exambank/internal/entity"
)

// ToQuestion maps an Ent row to the transfer type without touching edges.
func ToQuestion(e *ent.Question) *entity.Question {
	return &entity.Question{
		ID:             e.ID,
		Stem:           e.Stem,
		Explanation:    e.Explanation,
		Difficulty:     constants.Difficulty(e.Difficulty),
		YearAppeared:   e.YearAppeared,
		IsPreviousYear: e.IsPreviousYear,
		SubjectID:      e.SubjectID,
		TopicID:        e.TopicID,
		SubtopicID:     e.SubtopicID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ToQuestionWithEdges maps a row queried with WithOptions and WithTags.
func ToQuestionWithEdges(e *ent.Question) *entity.Question {
	q := ToQuestion(e)
	for _, opt := range e.Edges.Options {
		q.Options = append(q.Options, entity.ExtractedOption{
			Text:      opt.Text,
			IsCorrect: opt.IsCorrect,
			Order:     opt.OptionOrder,
		})
	}
	for _, t := range e.Edges.Tags {
		q.TagNames = append(q.TagNames, t.Name)
	}
	return q
}

// ToProcessingJob maps an Ent job row, decoding the JSON error and result
// columns. Decode failures are treated as empty lists rather than errors.
func ToProcessingJob(e *ent.ProcessingJob) *entity.ProcessingJob {
	job := &entity.ProcessingJob{
		ID:                 e.ID,
		Filename:           e.Filename,
		Status:             constants.JobStatus(e.Status),
		Progress:           e.Progress,
		TotalQuestions:     e.TotalQuestions,
		ProcessedQuestions: e.ProcessedQuestions,
		ErrorMessage:       e.ErrorMessage,
		StartedAt:          e.StartedAt,
		FinishedAt:         e.FinishedAt,
	}
	job.QuestionIDs = e.QuestionIds
	if len(e.Errors) > 0 {
		_ = json.Unmarshal(e.Errors, &job.Errors)
	}
	if len(e.Results) > 0 {
		_ = json.Unmarshal(e.Results, &job.Results)
	}
	if len(e.ImportErrors) > 0 {
		_ = json.Unmarshal(e.ImportErrors, &job.ImportErrors)
	}
	return job
}
