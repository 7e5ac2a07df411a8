package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	exambankv1 "github.com/qforge/exambank/gen/proto/exambank/v1"
	"github.com/qforge/exambank/internal/async"
	"github.com/qforge/exambank/internal/common"
	"github.com/qforge/exambank/internal/jobs"
)

type DocumentService struct {
	exambankv1.UnimplementedDocumentServiceServer
	store  jobs.Store
	queue  async.Queue
	logger *slog.Logger
}

func NewDocumentService(store jobs.Store, queue async.Queue, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		store:  store,
		queue:  queue,
		logger: logger,
	}
}

// ProcessDocument registers a job and hands the document to the worker
// queue. The response carries only the job ID; progress is polled through
// GetJobStatus.
func (s *DocumentService) ProcessDocument(ctx context.Context, req *exambankv1.ProcessDocumentRequest) (*exambankv1.ProcessDocumentResponse, error) {
	v := common.NewValidator().
		Field("filename", req.GetFilename(), common.Required).
		Field("raw_text", req.GetRawText(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid process request", "error", err)
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())

	job, err := s.store.Create(ctx, filename)
	if err != nil {
		s.logger.Error("failed to create job", "filename", filename, "error", err)
		return nil, status.Errorf(codes.Internal, "create job: %v", err)
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		JobID:       job.ID,
		RawText:     req.GetRawText(),
		Filename:    filename,
		SubmittedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("failed to enqueue document", "job_id", job.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue: %v", err)
	}

	s.logger.Info("document accepted", "job_id", job.ID, "filename", filename)
	return &exambankv1.ProcessDocumentResponse{
		JobId:  job.ID.String(),
		Status: string(job.Status),
	}, nil
}

func (s *DocumentService) GetJobStatus(ctx context.Context, req *exambankv1.GetJobStatusRequest) (*exambankv1.GetJobStatusResponse, error) {
	jid := strings.TrimSpace(req.GetJobId())
	v := common.NewValidator().Field("job_id", jid, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid job status request", "job_id", jid, "error", err)
		return nil, err
	}
	jobID, err := uuid.Parse(jid)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.store.Get(ctx, jobID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	if err != nil {
		s.logger.Error("failed to get job", "job_id", jobID, "error", err)
		return nil, status.Errorf(codes.Internal, "get job: %v", err)
	}
	return &exambankv1.GetJobStatusResponse{Job: toPBJob(job)}, nil
}
