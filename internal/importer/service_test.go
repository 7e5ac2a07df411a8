package importer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/extract"
	"github.com/qforge/exambank/internal/repository"
)

// fakeQuestionRepo keeps created questions in memory, keyed by fingerprint.
type fakeQuestionRepo struct {
	byFingerprint map[string]*entity.Question
	created       int
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{byFingerprint: make(map[string]*entity.Question)}
}

func (r *fakeQuestionRepo) CreateFromExtraction(_ context.Context, req *repository.CreateQuestionRequest) (*entity.Question, error) {
	q := &entity.Question{
		ID:         uuid.New(),
		Stem:       req.Question.Stem,
		Difficulty: req.Question.Difficulty,
		Options:    req.Question.Options,
		TagNames:   req.Question.TagNames,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	r.byFingerprint[req.Fingerprint] = q
	r.created++
	return q, nil
}

func (r *fakeQuestionRepo) FindByFingerprint(_ context.Context, fingerprint string) (*entity.Question, error) {
	return r.byFingerprint[fingerprint], nil
}

func (r *fakeQuestionRepo) ListQuestions(context.Context, repository.ListQuestionsFilter) ([]*entity.Question, error) {
	out := make([]*entity.Question, 0, len(r.byFingerprint))
	for _, q := range r.byFingerprint {
		out = append(out, q)
	}
	return out, nil
}

func record(stem string, correct int) entity.ExtractedQuestion {
	return entity.ExtractedQuestion{
		Stem:       stem,
		Difficulty: constants.DifficultyEasy,
		Options: []entity.ExtractedOption{
			{Text: "yes", IsCorrect: correct == 0, Order: 0},
			{Text: "no", IsCorrect: correct == 1, Order: 1},
		},
	}
}

func TestImport_PartialBatchSuccess(t *testing.T) {
	repo := newFakeQuestionRepo()
	svc := NewService(repo, nil)

	bad := record("Is water wet?", 0)
	bad.Options[1].IsCorrect = true // two corrects

	batch := []entity.ExtractedQuestion{
		record("Is the sky blue?", 0),
		bad,
		record("Is fire cold?", 1),
	}

	result, err := svc.Import(context.Background(), batch)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Contains(t, result.Errors[0].Error, extract.MsgNotOneCorrect)
	assert.Len(t, result.QuestionIDs, 2)
	assert.Equal(t, 2, repo.created)
}

func TestImport_DuplicateOfStoredQuestion(t *testing.T) {
	repo := newFakeQuestionRepo()
	svc := NewService(repo, nil)

	first, err := svc.Import(context.Background(), []entity.ExtractedQuestion{record("What is 2+2?", 0)})
	require.NoError(t, err)
	require.Equal(t, 1, first.Successful)

	// same stem modulo punctuation and case collides on the fingerprint
	second, err := svc.Import(context.Background(), []entity.ExtractedQuestion{record("what is 2 + 2", 0)})
	require.NoError(t, err)

	assert.Equal(t, 0, second.Successful)
	require.Len(t, second.Errors, 1)
	assert.Contains(t, second.Errors[0].Error, "duplicate of question "+first.QuestionIDs[0])
	assert.Equal(t, 1, repo.created)
}

func TestImport_DuplicateWithinBatch(t *testing.T) {
	repo := newFakeQuestionRepo()
	svc := NewService(repo, nil)

	result, err := svc.Import(context.Background(), []entity.ExtractedQuestion{
		record("Name the largest planet.", 0),
		record("Name the largest planet.", 0),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Contains(t, result.Errors[0].Error, "duplicate of question")
}

func TestValidateOnly_StrictStemLength(t *testing.T) {
	svc := NewService(newFakeQuestionRepo(), nil)

	report := svc.ValidateOnly([]entity.ExtractedQuestion{
		record("A stem comfortably over the strict minimum.", 0),
		record("Why?", 0),
	})

	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 1, report.Errors[0].Index)
	assert.Contains(t, report.Errors[0].Errors, extract.MsgStemTooShort)
}

func TestFingerprint_NormalizesFormatting(t *testing.T) {
	assert.Equal(t, "what is 2 2", Fingerprint("What is 2+2?"))
	assert.Equal(t, Fingerprint("What is 2+2?"), Fingerprint("  WHAT IS 2 + 2 "))
	assert.NotEqual(t, Fingerprint("What is 2+2?"), Fingerprint("What is 2+3?"))
}
