package jobs

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/internal/common"
	"github.com/qforge/exambank/internal/entity"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	job, err := store.Create(ctx, "2023-physics-morning.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, job.ID)
	assert.Equal(t, "2023-physics-morning.pdf", job.Filename)
	assert.Equal(t, constants.JobStatusProcessing, job.Status)
	assert.Zero(t, job.Progress)
	assert.False(t, job.StartedAt.IsZero())

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	job, err := store.Create(ctx, "paper.pdf")
	require.NoError(t, err)

	err = store.Update(ctx, job.ID, func(j *entity.ProcessingJob) {
		j.Status = constants.JobStatusParsingQuestions
		j.Progress = 30
		j.Errors = append(j.Errors, entity.BlockError{BlockIndex: 2, Error: "boom"})
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusParsingQuestions, got.Status)
	assert.Equal(t, 30, got.Progress)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, 2, got.Errors[0].BlockIndex)
}

func TestMemoryStore_UpdateUnknownID(t *testing.T) {
	store := NewMemoryStore()

	err := store.Update(context.Background(), uuid.New(), func(*entity.ProcessingJob) {})

	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	job, err := store.Create(ctx, "paper.pdf")
	require.NoError(t, err)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	got.Status = constants.JobStatusFailed
	got.Errors = append(got.Errors, entity.BlockError{BlockIndex: 0, Error: "mutated"})

	fresh, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusProcessing, fresh.Status)
	assert.Empty(t, fresh.Errors)
}
