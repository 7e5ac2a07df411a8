package async

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/importer"
	"github.com/qforge/exambank/internal/jobs"
	"github.com/qforge/exambank/internal/pipeline"
	"github.com/qforge/exambank/internal/repository"
)

// memQuestionRepo keeps created questions in memory, keyed by fingerprint.
type memQuestionRepo struct {
	byFingerprint map[string]*entity.Question
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{byFingerprint: make(map[string]*entity.Question)}
}

func (r *memQuestionRepo) CreateFromExtraction(_ context.Context, req *repository.CreateQuestionRequest) (*entity.Question, error) {
	q := &entity.Question{
		ID:         uuid.New(),
		Stem:       req.Question.Stem,
		Difficulty: req.Question.Difficulty,
		Options:    req.Question.Options,
	}
	r.byFingerprint[req.Fingerprint] = q
	return q, nil
}

func (r *memQuestionRepo) FindByFingerprint(_ context.Context, fingerprint string) (*entity.Question, error) {
	return r.byFingerprint[fingerprint], nil
}

func (r *memQuestionRepo) ListQuestions(context.Context, repository.ListQuestionsFilter) ([]*entity.Question, error) {
	out := make([]*entity.Question, 0, len(r.byFingerprint))
	for _, q := range r.byFingerprint {
		out = append(out, q)
	}
	return out, nil
}

const questionBlock = "What is two plus two, selected from the following candidate answers provided below?\n" +
	"(1) five (2) four (3) three (4) eight\n" +
	"Ans. (2)\n"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// A processed document must come out the other end as persisted questions:
// extraction, import and the job record all in one worker pass.
func TestDocumentQueue_PersistsExtractedQuestions(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()
	repo := newMemQuestionRepo()
	store := jobs.NewMemoryStore()

	job, err := store.Create(ctx, "2023-Mathematics Morning.pdf")
	require.NoError(t, err)

	proc := pipeline.NewProcessor(logger, store, 0)
	imp := importer.NewService(repo, logger)
	queue := NewDocumentQueue(proc, imp, store, logger, WithWorkers(1), WithQueueSize(4))

	// two blocks with the same stem: the first persists, the second is a
	// duplicate and must surface as an import error on the job
	rawText := "Q. 1.\n" + questionBlock + "Q. 2.\n" + questionBlock
	err = queue.Enqueue(ctx, Job{
		JobID:       job.ID,
		RawText:     rawText,
		Filename:    job.Filename,
		SubmittedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	queue.Shutdown(ctx)

	final, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, final.Status)
	require.Len(t, final.Results, 2)

	require.Len(t, final.QuestionIDs, 1)
	require.Len(t, final.ImportErrors, 1)
	assert.Equal(t, 1, final.ImportErrors[0].Index)
	assert.Contains(t, final.ImportErrors[0].Error, "duplicate of question "+final.QuestionIDs[0])
	require.NotNil(t, final.ImportErrors[0].Question)

	stored, err := repo.ListQuestions(ctx, repository.ListQuestionsFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, final.QuestionIDs[0], stored[0].ID.String())
}

func TestDocumentQueue_EnqueueAfterShutdown(t *testing.T) {
	logger := testLogger()
	store := jobs.NewMemoryStore()
	proc := pipeline.NewProcessor(logger, store, 0)
	imp := importer.NewService(newMemQuestionRepo(), logger)
	queue := NewDocumentQueue(proc, imp, store, logger, WithWorkers(1))

	queue.Shutdown(context.Background())

	err := queue.Enqueue(context.Background(), Job{JobID: uuid.New()})
	assert.NoError(t, err)
}
