package jobs

import (
	"context"

	"github.com/google/uuid"

	"github.com/qforge/exambank/internal/entity"
)

// Store is the job-status capability the orchestrator depends on. It owns
// neither job creation policy nor lifecycle; callers create a job, hand its
// ID to the pipeline, and poll Get. Updates must be idempotent per job ID
// so at-least-once delivery is safe.
type Store interface {
	Create(ctx context.Context, filename string) (*entity.ProcessingJob, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error)
	// Update applies fn to the stored job under the store's own locking
	// and persists the result.
	Update(ctx context.Context, id uuid.UUID, fn func(*entity.ProcessingJob)) error
}
