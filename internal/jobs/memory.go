package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/internal/common"
	"github.com/qforge/exambank/internal/entity"
)

// MemoryStore keeps jobs in a process-local map. Suitable for single-node
// runs and tests; durable deployments use the repository-backed store.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*entity.ProcessingJob
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{jobs: make(map[uuid.UUID]*entity.ProcessingJob)}
}

func (s *MemoryStore) Create(_ context.Context, filename string) (*entity.ProcessingJob, error) {
	job := &entity.ProcessingJob{
		ID:        uuid.New(),
		Filename:  filename,
		Status:    constants.JobStatusProcessing,
		StartedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()
	return copyJob(job), nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyJob(job), nil
}

func (s *MemoryStore) Update(_ context.Context, id uuid.UUID, fn func(*entity.ProcessingJob)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	fn(job)
	return nil
}

// copyJob returns a defensive copy so callers cannot mutate stored state.
func copyJob(j *entity.ProcessingJob) *entity.ProcessingJob {
	out := *j
	out.Errors = append([]entity.BlockError(nil), j.Errors...)
	out.Results = append([]entity.ExtractedQuestion(nil), j.Results...)
	out.QuestionIDs = append([]string(nil), j.QuestionIDs...)
	out.ImportErrors = append([]entity.ImportError(nil), j.ImportErrors...)
	return &out
}
