package importer

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/extract"
	"github.com/qforge/exambank/internal/repository"
)

// Service turns batches of extracted questions into canonical stored
// records. Partial batch success is the contract: a failing record is
// reported with its index and never aborts its siblings.
type Service struct {
	questions repository.QuestionRepository
	logger    *slog.Logger
}

func NewService(questions repository.QuestionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{questions: questions, logger: logger}
}

// Import validates and persists each record of the batch. Records read-only;
// a correction requires re-extraction, not an edit here.
func (s *Service) Import(ctx context.Context, batch []entity.ExtractedQuestion) (*entity.ImportResult, error) {
	result := &entity.ImportResult{
		Total:       len(batch),
		Errors:      make([]entity.ImportError, 0),
		QuestionIDs: make([]string, 0, len(batch)),
	}

	for i := range batch {
		q := batch[i]

		if errs := extract.ValidateQuestion(&q); len(errs) > 0 {
			s.fail(result, i, &batch[i], strings.Join(errs, "; "))
			continue
		}

		fp := Fingerprint(q.Stem)
		dup, err := s.questions.FindByFingerprint(ctx, fp)
		if err != nil {
			s.fail(result, i, &batch[i], fmt.Sprintf("duplicate lookup: %v", err))
			continue
		}
		if dup != nil {
			s.fail(result, i, &batch[i], fmt.Sprintf("duplicate of question %s", dup.ID))
			continue
		}

		created, err := s.questions.CreateFromExtraction(ctx, &repository.CreateQuestionRequest{
			Question:    q,
			Fingerprint: fp,
		})
		if err != nil {
			s.fail(result, i, &batch[i], fmt.Sprintf("create question: %v", err))
			continue
		}

		result.Successful++
		result.QuestionIDs = append(result.QuestionIDs, created.ID.String())
	}

	result.Failed = len(result.Errors)
	s.logger.Info("import finished",
		"total", result.Total, "successful", result.Successful, "failed", result.Failed)
	return result, nil
}

// ValidateOnly runs the strict structural checks without persisting anything.
func (s *Service) ValidateOnly(batch []entity.ExtractedQuestion) *entity.ValidationReport {
	report := &entity.ValidationReport{Errors: make([]entity.ValidationIssue, 0)}
	for i := range batch {
		if errs := extract.ValidateQuestionStrict(&batch[i]); len(errs) > 0 {
			report.Invalid++
			report.Errors = append(report.Errors, entity.ValidationIssue{Index: i, Errors: errs})
			continue
		}
		report.Valid++
	}
	return report
}

func (s *Service) fail(result *entity.ImportResult, index int, q *entity.ExtractedQuestion, msg string) {
	s.logger.Warn("record rejected", "index", index, "error", msg)
	result.Errors = append(result.Errors, entity.ImportError{Index: index, Error: msg, Question: q})
}

var reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Fingerprint is the duplicate key for a question: the stem lowercased,
// stripped of punctuation and collapsed to single spaces. Two stems that
// differ only in formatting or OCR punctuation noise collide here.
func Fingerprint(stem string) string {
	s := reNonAlnum.ReplaceAllString(strings.ToLower(stem), " ")
	return strings.Join(strings.Fields(s), " ")
}
