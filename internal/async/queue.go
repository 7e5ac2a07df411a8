package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/importer"
	"github.com/qforge/exambank/internal/jobs"
	"github.com/qforge/exambank/internal/pipeline"
)

// Job is the smallest useful unit. Extend as needed later (trace, retry, etc).
type Job struct {
	JobID       uuid.UUID
	RawText     string
	Filename    string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// DocumentQueue fans submitted documents out to a fixed pool of workers.
// Each worker runs the full path for one document: extraction, then import
// of the extracted questions, then recording the created question IDs and
// per-record rejections on the job.
type DocumentQueue struct {
	proc    *pipeline.Processor
	imp     *importer.Service
	store   jobs.Store
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*DocumentQueue)

func WithWorkers(n int) Option {
	return func(q *DocumentQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *DocumentQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *DocumentQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewDocumentQueue(proc *pipeline.Processor, imp *importer.Service, store jobs.Store, logger *slog.Logger, opts ...Option) *DocumentQueue {
	q := &DocumentQueue{
		proc:    proc,
		imp:     imp,
		store:   store,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *DocumentQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					q.run(ctx, workerID, job)
					cancel()
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// run drives one document end to end. Extraction failures are already
// recorded on the job by the orchestrator; import runs only on a clean
// extraction and its outcome is written back to the job.
func (q *DocumentQueue) run(ctx context.Context, workerID int, job Job) {
	questions, err := q.proc.Process(ctx, job.JobID, job.RawText, job.Filename)
	if err != nil {
		q.logger.Error("processing failed", "worker_id", workerID, "job_id", job.JobID, "error", err)
		return
	}

	result, err := q.imp.Import(ctx, questions)
	if err != nil {
		q.logger.Error("import failed", "worker_id", workerID, "job_id", job.JobID, "error", err)
		return
	}

	if err := q.store.Update(ctx, job.JobID, func(j *entity.ProcessingJob) {
		j.QuestionIDs = result.QuestionIDs
		j.ImportErrors = result.Errors
	}); err != nil {
		q.logger.Error("failed to record import result", "worker_id", workerID, "job_id", job.JobID, "error", err)
		return
	}

	q.logger.Info("processed document successfully",
		"worker_id", workerID, "job_id", job.JobID,
		"extracted", len(questions), "imported", result.Successful, "rejected", result.Failed)
}

func (q *DocumentQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing", "job_id", job.JobID, "filename", job.Filename)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID)
		q.ch <- job
	}
	return nil
}

func (q *DocumentQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
