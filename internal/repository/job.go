package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/gen/ent"
	"github.com/qforge/exambank/internal/common"
	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/jobs"
	"github.com/qforge/exambank/internal/utils"
)

// jobStore is the durable jobs.Store backed by the processing_jobs table.
// It survives restarts, unlike the in-memory store.
type jobStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobStore(client *ent.Client, logger *slog.Logger) jobs.Store {
	return &jobStore{client: client, logger: logger}
}

func (s *jobStore) Create(ctx context.Context, filename string) (*entity.ProcessingJob, error) {
	row, err := s.client.ProcessingJob.Create().
		SetFilename(filename).
		SetStatus(string(constants.JobStatusProcessing)).
		Save(ctx)
	if err != nil {
		s.logger.Error("processing_job create failed", "filename", filename, "err", err)
		return nil, err
	}
	s.logger.Info("processing_job created", "job_id", row.ID, "filename", filename)
	return utils.ToProcessingJob(row), nil
}

func (s *jobStore) Get(ctx context.Context, id uuid.UUID) (*entity.ProcessingJob, error) {
	row, err := s.client.ProcessingJob.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return utils.ToProcessingJob(row), nil
}

// Update is a read-modify-write of one job row. A single orchestrator owns
// each job, so no row locking is taken; the write is a full idempotent set.
func (s *jobStore) Update(ctx context.Context, id uuid.UUID, fn func(*entity.ProcessingJob)) error {
	row, err := s.client.ProcessingJob.Get(ctx, id)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	if err != nil {
		return err
	}

	job := utils.ToProcessingJob(row)
	fn(job)

	upd := s.client.ProcessingJob.UpdateOneID(id).
		SetStatus(string(job.Status)).
		SetProgress(job.Progress).
		SetTotalQuestions(job.TotalQuestions).
		SetProcessedQuestions(job.ProcessedQuestions).
		SetNillableErrorMessage(job.ErrorMessage)
	if job.FinishedAt != nil {
		upd = upd.SetFinishedAt(*job.FinishedAt)
	}
	if b, err := json.Marshal(job.Errors); err == nil {
		upd = upd.SetErrors(b)
	}
	if b, err := json.Marshal(job.Results); err == nil {
		upd = upd.SetResults(b)
	}
	upd = upd.SetQuestionIds(job.QuestionIDs)
	if b, err := json.Marshal(job.ImportErrors); err == nil {
		upd = upd.SetImportErrors(b)
	}

	if _, err := upd.Save(ctx); err != nil {
		s.logger.Error("processing_job update failed", "job_id", id, "err", err)
		return err
	}
	return nil
}
