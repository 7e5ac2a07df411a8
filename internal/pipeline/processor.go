package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/extract"
	"github.com/qforge/exambank/internal/jobs"
)

// BlockOutcome tags what one block produced. Skips are deliberate tolerance
// for noisy source text and are not errors.
type BlockOutcome int

const (
	BlockSkipped BlockOutcome = iota
	BlockExtracted
	BlockFailed
)

// BlockResult is the tagged per-block result of the extraction loop.
type BlockResult struct {
	Index    int
	Outcome  BlockOutcome
	Question *entity.ExtractedQuestion
	Err      error
}

// Progress checkpoints: 10% once text is available, 30% after segmentation,
// then 60→100 linearly across the per-block loop.
const (
	progressTextReady = 10
	progressSegmented = 30
	progressLoopStart = 60
)

// Processor drives one document through metadata inference, segmentation
// and the per-block extraction loop, reporting to the injected job store.
type Processor struct {
	logger    *slog.Logger
	store     jobs.Store
	segmenter *extract.Segmenter
	fields    *extract.FieldExtractor
}

func NewProcessor(logger *slog.Logger, store jobs.Store, maxBlocks int) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		store:     store,
		segmenter: extract.NewSegmenter(maxBlocks, logger),
		fields:    extract.NewFieldExtractor(logger),
	}
}

// Process runs the full extraction for one document. Per-block failures are
// recorded on the job and never abort the batch; only whole-document
// failures (empty text, cancellation) mark the job failed. The extracted
// questions are returned in block order.
func (p *Processor) Process(ctx context.Context, jobID uuid.UUID, rawText, filename string) ([]entity.ExtractedQuestion, error) {
	if strings.TrimSpace(rawText) == "" {
		err := errors.New("document text is empty")
		p.failJob(ctx, jobID, err)
		return nil, err
	}

	if err := p.update(ctx, jobID, func(j *entity.ProcessingJob) {
		j.Status = constants.JobStatusExtractingText
		j.Progress = progressTextReady
	}); err != nil {
		return nil, err
	}

	md := extract.InferMetadata(filename)
	p.logger.Debug("metadata inferred",
		"job_id", jobID, "filename", filename,
		"year", md.Year, "subject", md.Subject, "shift", md.Shift)

	blocks := p.segmenter.Segment(rawText)
	if err := p.update(ctx, jobID, func(j *entity.ProcessingJob) {
		j.Status = constants.JobStatusParsingQuestions
		j.Progress = progressSegmented
		j.TotalQuestions = len(blocks)
	}); err != nil {
		return nil, err
	}
	p.logger.Info("document segmented", "job_id", jobID, "blocks", len(blocks))

	results := make([]entity.ExtractedQuestion, 0, len(blocks))
	for i, block := range blocks {
		// cancellation is honored between blocks; completed results are kept
		if err := ctx.Err(); err != nil {
			p.failJob(ctx, jobID, err)
			return results, err
		}

		res := p.processBlock(i, block, md)
		switch res.Outcome {
		case BlockExtracted:
			results = append(results, *res.Question)
		case BlockFailed:
			p.logger.Warn("block failed", "job_id", jobID, "block", i, "err", res.Err)
		}

		progress := progressLoopStart + (100-progressLoopStart)*(i+1)/len(blocks)
		if err := p.update(ctx, jobID, func(j *entity.ProcessingJob) {
			j.Status = constants.JobStatusProcessingQuestions
			j.Progress = progress
			j.ProcessedQuestions = len(results)
			if res.Outcome == BlockFailed {
				j.Errors = append(j.Errors, entity.BlockError{BlockIndex: i, Error: res.Err.Error()})
			}
		}); err != nil {
			return results, err
		}
	}

	if err := p.update(ctx, jobID, func(j *entity.ProcessingJob) {
		now := time.Now().UTC()
		j.Status = constants.JobStatusCompleted
		j.Progress = 100
		j.ProcessedQuestions = len(results)
		j.Results = results
		j.FinishedAt = &now
	}); err != nil {
		return results, err
	}

	p.logger.Info("document processed", "job_id", jobID, "extracted", len(results), "blocks", len(blocks))
	return results, nil
}

// processBlock runs one block through field extraction, math normalization,
// difficulty estimation and the validation gate. A panic inside the regex
// cascades is confined to the block.
func (p *Processor) processBlock(index int, block string, md entity.DocumentMetadata) (result BlockResult) {
	defer func() {
		if r := recover(); r != nil {
			result = BlockResult{Index: index, Outcome: BlockFailed, Err: fmt.Errorf("block %d: panic: %v", index, r)}
		}
	}()

	fields, ok := p.fields.Extract(block)
	if !ok {
		return BlockResult{Index: index, Outcome: BlockSkipped}
	}

	q := buildQuestion(fields, md)
	extract.NormalizeQuestionMath(q)
	q.Difficulty = extract.EstimateDifficulty(q.Stem)

	if errs := extract.ValidateQuestion(q); len(errs) > 0 {
		return BlockResult{Index: index, Outcome: BlockFailed, Err: errors.New(strings.Join(errs, "; "))}
	}
	return BlockResult{Index: index, Outcome: BlockExtracted, Question: q}
}

// buildQuestion attaches document provenance and derived tags to the
// extracted fields. Difficulty is filled in afterwards from the normalized
// stem.
func buildQuestion(fields *extract.Fields, md entity.DocumentMetadata) *entity.ExtractedQuestion {
	q := &entity.ExtractedQuestion{
		Stem:           fields.Stem,
		Explanation:    fields.Explanation,
		Options:        fields.Options,
		YearAppeared:   md.Year,
		IsPreviousYear: md.Year != nil,
		Subject:        md.Subject,
	}
	if md.Subject != nil {
		q.TagNames = append(q.TagNames, string(*md.Subject))
	}
	if md.Year != nil {
		q.TagNames = append(q.TagNames, strconv.Itoa(*md.Year))
	}
	if md.Shift != nil {
		q.TagNames = append(q.TagNames, string(*md.Shift))
	}
	return q
}

func (p *Processor) update(ctx context.Context, jobID uuid.UUID, fn func(*entity.ProcessingJob)) error {
	if err := p.store.Update(ctx, jobID, fn); err != nil {
		p.logger.Error("job update failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (p *Processor) failJob(ctx context.Context, jobID uuid.UUID, cause error) {
	msg := cause.Error()
	// the job record must still be written when ctx itself was canceled
	_ = p.store.Update(context.WithoutCancel(ctx), jobID, func(j *entity.ProcessingJob) {
		now := time.Now().UTC()
		j.Status = constants.JobStatusFailed
		j.ErrorMessage = &msg
		j.FinishedAt = &now
	})
}
