package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/extract"
	"github.com/qforge/exambank/internal/jobs"
)

const sampleDocument = "Q. 1.\n" +
	"What is two plus two, selected from the following candidate answers provided below?\n" +
	"(1) five (2) four (3) three (4) eight\n" +
	"Ans. (2)\n" +
	"Q. 2.\n" +
	"Pick any one of the following options for this entirely unanswerable survey question.\n" +
	"(1) first choice (2) second choice\n" +
	"Q. 3.\n" +
	"(1) a first option with plenty of descriptive text inside (2) a second option with plenty more descriptive text\n"

// recordingStore captures the progress value after every update so tests can
// assert checkpoint ordering.
type recordingStore struct {
	jobs.Store
	progress []int
}

func (s *recordingStore) Update(ctx context.Context, id uuid.UUID, fn func(*entity.ProcessingJob)) error {
	if err := s.Store.Update(ctx, id, fn); err != nil {
		return err
	}
	job, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	s.progress = append(s.progress, job.Progress)
	return nil
}

func TestProcess_MixedDocument(t *testing.T) {
	ctx := context.Background()
	store := jobs.NewMemoryStore()
	job, err := store.Create(ctx, "2023-Mathematics Morning.pdf")
	require.NoError(t, err)

	proc := NewProcessor(nil, store, 0)
	results, err := proc.Process(ctx, job.ID, sampleDocument, job.Filename)
	require.NoError(t, err)

	// block 0 extracts, block 1 fails validation, block 2 has no stem and
	// is skipped without an error
	require.Len(t, results, 1)
	q := results[0]
	assert.Contains(t, q.Stem, "two plus two")
	require.Len(t, q.Options, 4)
	assert.Equal(t, "four", q.Options[1].Text)
	assert.True(t, q.Options[1].IsCorrect)
	require.NotNil(t, q.YearAppeared)
	assert.Equal(t, 2023, *q.YearAppeared)
	assert.True(t, q.IsPreviousYear)
	require.NotNil(t, q.Subject)
	assert.Equal(t, constants.Mathematics, *q.Subject)
	assert.Equal(t, []string{"Mathematics", "2023", "Morning"}, q.TagNames)
	assert.NotEmpty(t, q.Difficulty)

	final, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, final.Status)
	assert.Equal(t, 100, final.Progress)
	assert.Equal(t, 3, final.TotalQuestions)
	assert.Equal(t, 1, final.ProcessedQuestions)
	require.Len(t, final.Errors, 1)
	assert.Equal(t, 1, final.Errors[0].BlockIndex)
	assert.Contains(t, final.Errors[0].Error, extract.MsgNotOneCorrect)
	require.Len(t, final.Results, 1)
	assert.NotNil(t, final.FinishedAt)
}

func TestProcess_ProgressMonotonic(t *testing.T) {
	ctx := context.Background()
	store := &recordingStore{Store: jobs.NewMemoryStore()}
	job, err := store.Store.Create(ctx, "2023-Mathematics Morning.pdf")
	require.NoError(t, err)

	proc := NewProcessor(nil, store, 0)
	_, err = proc.Process(ctx, job.ID, sampleDocument, job.Filename)
	require.NoError(t, err)

	require.NotEmpty(t, store.progress)
	assert.Equal(t, 10, store.progress[0])
	assert.Equal(t, 30, store.progress[1])
	for i := 1; i < len(store.progress); i++ {
		assert.GreaterOrEqual(t, store.progress[i], store.progress[i-1])
	}
	assert.Equal(t, 100, store.progress[len(store.progress)-1])
}

func TestProcess_EmptyTextFailsJob(t *testing.T) {
	ctx := context.Background()
	store := jobs.NewMemoryStore()
	job, err := store.Create(ctx, "empty.pdf")
	require.NoError(t, err)

	proc := NewProcessor(nil, store, 0)
	_, err = proc.Process(ctx, job.ID, "   \n ", job.Filename)
	require.Error(t, err)

	final, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, final.Status)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "empty")
	assert.NotNil(t, final.FinishedAt)
}

func TestProcess_CancellationFailsJob(t *testing.T) {
	store := jobs.NewMemoryStore()
	job, err := store.Create(context.Background(), "2023-Mathematics Morning.pdf")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	proc := NewProcessor(nil, store, 0)
	_, err = proc.Process(ctx, job.ID, sampleDocument, job.Filename)
	assert.ErrorIs(t, err, context.Canceled)

	// the failure record is written even though ctx is canceled
	final, err := store.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, final.Status)
	require.NotNil(t, final.ErrorMessage)
}
