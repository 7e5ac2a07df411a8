package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/qforge/exambank/constants"
	exambankv1 "github.com/qforge/exambank/gen/proto/exambank/v1"
	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/export"
	"github.com/qforge/exambank/internal/importer"
	"github.com/qforge/exambank/internal/repository"
)

type QuestionService struct {
	exambankv1.UnimplementedQuestionServiceServer
	importSvc    *importer.Service
	exportSvc    *export.Service
	questionRepo repository.QuestionRepository
	logger       *slog.Logger
}

func NewQuestionService(importSvc *importer.Service, exportSvc *export.Service, questionRepo repository.QuestionRepository, logger *slog.Logger) *QuestionService {
	return &QuestionService{
		importSvc:    importSvc,
		exportSvc:    exportSvc,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

func (s *QuestionService) ImportQuestions(ctx context.Context, req *exambankv1.ImportQuestionsRequest) (*exambankv1.ImportQuestionsResponse, error) {
	var batch []entity.ExtractedQuestion
	switch {
	case len(req.GetQuestionsJson()) > 0:
		decoded, err := importer.DecodeBatch(req.GetQuestionsJson())
		if err != nil {
			s.logger.Error("import payload rejected", "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "questions_json: %v", err)
		}
		batch = decoded
	case len(req.GetQuestions()) > 0:
		batch = make([]entity.ExtractedQuestion, 0, len(req.GetQuestions()))
		for _, pb := range req.GetQuestions() {
			batch = append(batch, fromPBQuestion(pb))
		}
	default:
		return nil, status.Error(codes.InvalidArgument, "questions are required")
	}

	result, err := s.importSvc.Import(ctx, batch)
	if err != nil {
		s.logger.Error("import failed", "error", err)
		return nil, status.Errorf(codes.Internal, "import: %v", err)
	}
	return toPBImportResult(result), nil
}

func (s *QuestionService) ValidateQuestions(_ context.Context, req *exambankv1.ValidateQuestionsRequest) (*exambankv1.ValidateQuestionsResponse, error) {
	if len(req.GetQuestions()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "questions are required")
	}

	batch := make([]entity.ExtractedQuestion, 0, len(req.GetQuestions()))
	for _, pb := range req.GetQuestions() {
		batch = append(batch, fromPBQuestion(pb))
	}

	report := s.importSvc.ValidateOnly(batch)
	resp := &exambankv1.ValidateQuestionsResponse{
		Valid:   int32(report.Valid),
		Invalid: int32(report.Invalid),
	}
	for _, issue := range report.Errors {
		resp.Errors = append(resp.Errors, &exambankv1.ValidationIssue{
			Index:  int32(issue.Index),
			Errors: issue.Errors,
		})
	}
	return resp, nil
}

func (s *QuestionService) ListQuestions(ctx context.Context, req *exambankv1.ListQuestionsRequest) (*exambankv1.ListQuestionsResponse, error) {
	filter, err := s.parseFilter(req.GetSubjectId(), req.GetDifficulty(), req.GetYear())
	if err != nil {
		return nil, err
	}

	qs, err := s.questionRepo.ListQuestions(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list questions", "error", err)
		return nil, status.Errorf(codes.Internal, "list questions: %v", err)
	}

	out := make([]*exambankv1.Question, 0, len(qs))
	for _, q := range qs {
		out = append(out, toPBQuestion(q))
	}
	return &exambankv1.ListQuestionsResponse{Questions: out}, nil
}

func (s *QuestionService) ExportQuestions(ctx context.Context, req *exambankv1.ExportQuestionsRequest) (*exambankv1.ExportQuestionsResponse, error) {
	filter, err := s.parseFilter(req.GetSubjectId(), req.GetDifficulty(), req.GetYear())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exportSvc.ExportQuestionsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &exambankv1.ExportQuestionsResponse{Xlsx: xlsx}, nil
}

func (s *QuestionService) parseFilter(subjectID, difficulty string, year int32) (repository.ListQuestionsFilter, error) {
	var filter repository.ListQuestionsFilter
	if sid := strings.TrimSpace(subjectID); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			s.logger.Error("invalid subject_id format", "subject_id", sid, "error", err)
			return filter, status.Error(codes.InvalidArgument, "subject_id must be a UUID")
		}
		filter.SubjectID = &id
	}
	if d := strings.TrimSpace(difficulty); d != "" {
		canon, ok := constants.CanonicalDifficulty(d)
		if !ok {
			return filter, status.Errorf(codes.InvalidArgument, "difficulty must be one of %v", constants.Difficulties())
		}
		filter.Difficulty = &canon
	}
	if year != 0 {
		y := int(year)
		filter.Year = &y
	}
	return filter, nil
}
