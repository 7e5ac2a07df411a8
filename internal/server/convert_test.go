package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/internal/entity"
)

func sampleExtracted() *entity.ExtractedQuestion {
	return &entity.ExtractedQuestion{
		Stem:       "What is the derivative of x squared with respect to x?",
		Difficulty: constants.DifficultyEasy,
		Options: []entity.ExtractedOption{
			{Text: "2x", IsCorrect: true, Order: 0},
			{Text: "x", Order: 1},
		},
	}
}

// A rejected record must come back with the import error so the caller can
// correct and resubmit it without re-running extraction.
func TestToPBImportResult_CarriesRejectedRecord(t *testing.T) {
	rejected := sampleExtracted()
	result := &entity.ImportResult{
		Total:       2,
		Successful:  1,
		Failed:      1,
		QuestionIDs: []string{uuid.NewString()},
		Errors: []entity.ImportError{
			{Index: 1, Error: "duplicate of question abc", Question: rejected},
		},
	}

	resp := toPBImportResult(result)

	assert.Equal(t, int32(2), resp.Total)
	assert.Equal(t, int32(1), resp.Successful)
	assert.Equal(t, int32(1), resp.Failed)
	assert.Equal(t, result.QuestionIDs, resp.QuestionIds)

	require.Len(t, resp.Errors, 1)
	pbErr := resp.Errors[0]
	assert.Equal(t, int32(1), pbErr.Index)
	assert.Equal(t, "duplicate of question abc", pbErr.Error)
	require.NotNil(t, pbErr.Question)
	assert.Equal(t, rejected.Stem, pbErr.Question.Stem)
	require.Len(t, pbErr.Question.Options, 2)
	assert.Equal(t, "2x", pbErr.Question.Options[0].Text)
	assert.True(t, pbErr.Question.Options[0].IsCorrect)
}

func TestToPBImportResult_NoQuestionOnNilRecord(t *testing.T) {
	result := &entity.ImportResult{
		Total:  1,
		Failed: 1,
		Errors: []entity.ImportError{{Index: 0, Error: "create question: boom"}},
	}

	resp := toPBImportResult(result)

	require.Len(t, resp.Errors, 1)
	assert.Nil(t, resp.Errors[0].Question)
}

func TestToPBJob_IncludesImportOutcome(t *testing.T) {
	job := &entity.ProcessingJob{
		ID:          uuid.New(),
		Filename:    "2019-Physics Evening.pdf",
		Status:      constants.JobStatusCompleted,
		Progress:    100,
		StartedAt:   time.Now().UTC(),
		QuestionIDs: []string{uuid.NewString(), uuid.NewString()},
		ImportErrors: []entity.ImportError{
			{Index: 2, Error: "duplicate of question xyz", Question: sampleExtracted()},
		},
	}

	pb := toPBJob(job)

	assert.Equal(t, job.QuestionIDs, pb.QuestionIds)
	require.Len(t, pb.ImportErrors, 1)
	assert.Equal(t, int32(2), pb.ImportErrors[0].Index)
	require.NotNil(t, pb.ImportErrors[0].Question)
	assert.Equal(t, job.ImportErrors[0].Question.Stem, pb.ImportErrors[0].Question.Stem)
}
