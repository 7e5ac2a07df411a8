package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/qforge/exambank/internal/repository"
)

// Service is a tiny façade over the question repository that produces XLSX
// bytes for exports.
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

// ExportQuestionsXLSX returns an XLSX workbook (as bytes) for the questions
// matching the filter. Options are flattened into one column each, with the
// correct option marked.
func (s *Service) ExportQuestionsXLSX(ctx context.Context, filter repository.ListQuestionsFilter) ([]byte, error) {
	start := time.Now()

	qs, err := s.questions.ListQuestions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Questions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"ID",
		"Stem",
		"Option A",
		"Option B",
		"Option C",
		"Option D",
		"Correct",
		"Difficulty",
		"Year",
		"Tags",
		"Explanation",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, q := range qs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, q.ID.String())
		write(2, truncate(q.Stem, 500))

		correct := ""
		for _, opt := range q.Options {
			// Option columns start at C; orders beyond D are dropped.
			if opt.Order >= 0 && opt.Order < 4 {
				write(3+opt.Order, truncate(opt.Text, 140))
			}
			if opt.IsCorrect {
				correct = string(rune('A' + opt.Order))
			}
		}
		write(7, correct)

		write(8, string(q.Difficulty))
		if q.YearAppeared != nil {
			write(9, *q.YearAppeared)
		}
		write(10, strings.Join(q.TagNames, ", "))
		if q.Explanation != nil {
			write(11, truncate(*q.Explanation, 500))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // id
	_ = f.SetColWidth(sheet, "B", "B", 60) // stem
	_ = f.SetColWidth(sheet, "C", "F", 24) // options
	_ = f.SetColWidth(sheet, "G", "I", 10)
	_ = f.SetColWidth(sheet, "J", "J", 28) // tags
	_ = f.SetColWidth(sheet, "K", "K", 60) // explanation

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(qs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
