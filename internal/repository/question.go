package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/qforge/exambank/constants"
	"github.com/qforge/exambank/gen/ent"
	"github.com/qforge/exambank/gen/ent/question"
	"github.com/qforge/exambank/gen/ent/questionoption"
	"github.com/qforge/exambank/gen/ent/subject"
	"github.com/qforge/exambank/gen/ent/tag"
	"github.com/qforge/exambank/internal/entity"
	"github.com/qforge/exambank/internal/utils"
)

// CreateQuestionRequest wraps parameters for persisting one extracted question.
type CreateQuestionRequest struct {
	Question    entity.ExtractedQuestion
	Fingerprint string
}

// ListQuestionsFilter narrows ListQuestions; nil fields match everything.
type ListQuestionsFilter struct {
	SubjectID  *uuid.UUID
	Difficulty *constants.Difficulty
	Year       *int
}

type QuestionRepository interface {
	// CreateFromExtraction persists a question with its options and tag
	// links in one transaction; a failure mid-creation leaves nothing.
	CreateFromExtraction(ctx context.Context, req *CreateQuestionRequest) (*entity.Question, error)
	// FindByFingerprint returns (nil, nil) when no question matches.
	FindByFingerprint(ctx context.Context, fingerprint string) (*entity.Question, error)
	ListQuestions(ctx context.Context, filter ListQuestionsFilter) ([]*entity.Question, error)
}

type questionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewQuestionRepository(client *ent.Client, logger *slog.Logger) QuestionRepository {
	return &questionRepository{
		client: client,
		logger: logger,
	}
}

func (r *questionRepository) CreateFromExtraction(ctx context.Context, req *CreateQuestionRequest) (*entity.Question, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	created, err := r.createInTx(ctx, tx, req)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *questionRepository) createInTx(ctx context.Context, tx *ent.Tx, req *CreateQuestionRequest) (*entity.Question, error) {
	eq := req.Question

	subjectID, err := r.resolveSubject(ctx, tx, &eq)
	if err != nil {
		return nil, err
	}

	tagIDs, err := r.upsertTags(ctx, tx, eq.TagNames)
	if err != nil {
		return nil, err
	}

	row, err := tx.Question.Create().
		SetStem(eq.Stem).
		SetStemFingerprint(req.Fingerprint).
		SetNillableExplanation(eq.Explanation).
		SetDifficulty(string(eq.Difficulty)).
		SetNillableYearAppeared(eq.YearAppeared).
		SetIsPreviousYear(eq.IsPreviousYear).
		SetNillableSubjectID(subjectID).
		AddTagIDs(tagIDs...).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	bulk := make([]*ent.QuestionOptionCreate, len(eq.Options))
	for i, opt := range eq.Options {
		bulk[i] = tx.QuestionOption.Create().
			SetQuestionID(row.ID).
			SetText(opt.Text).
			SetIsCorrect(opt.IsCorrect).
			SetOptionOrder(opt.Order)
	}
	if _, err := tx.QuestionOption.CreateBulk(bulk...).Save(ctx); err != nil {
		return nil, err
	}

	r.logger.Info("question created", "question_id", row.ID, "options", len(eq.Options), "tags", len(tagIDs))

	stored := utils.ToQuestion(row)
	stored.Options = eq.Options
	stored.TagNames = eq.TagNames
	return stored, nil
}

// resolveSubject prefers an explicit subject ID and otherwise upserts the
// inferred subject name.
func (r *questionRepository) resolveSubject(ctx context.Context, tx *ent.Tx, eq *entity.ExtractedQuestion) (*uuid.UUID, error) {
	if eq.SubjectID != nil {
		return eq.SubjectID, nil
	}
	if eq.Subject == nil {
		return nil, nil
	}
	name := string(*eq.Subject)
	row, err := tx.Subject.Query().Where(subject.Name(name)).Only(ctx)
	if ent.IsNotFound(err) {
		row, err = tx.Subject.Create().SetName(name).Save(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &row.ID, nil
}

// upsertTags resolves tag names to IDs, creating missing tags. Keyed by name.
func (r *questionRepository) upsertTags(ctx context.Context, tx *ent.Tx, names []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		row, err := tx.Tag.Query().Where(tag.Name(name)).Only(ctx)
		if ent.IsNotFound(err) {
			row, err = tx.Tag.Create().SetName(name).Save(ctx)
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (r *questionRepository) FindByFingerprint(ctx context.Context, fingerprint string) (*entity.Question, error) {
	row, err := r.client.Question.Query().
		Where(question.StemFingerprint(fingerprint)).
		WithOptions(func(q *ent.QuestionOptionQuery) {
			q.Order(questionoption.ByOptionOrder())
		}).
		WithTags().
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return utils.ToQuestionWithEdges(row), nil
}

func (r *questionRepository) ListQuestions(ctx context.Context, filter ListQuestionsFilter) ([]*entity.Question, error) {
	q := r.client.Question.Query()
	if filter.SubjectID != nil {
		q = q.Where(question.SubjectID(*filter.SubjectID))
	}
	if filter.Difficulty != nil {
		q = q.Where(question.Difficulty(string(*filter.Difficulty)))
	}
	if filter.Year != nil {
		q = q.Where(question.YearAppeared(*filter.Year))
	}
	rows, err := q.
		WithOptions(func(oq *ent.QuestionOptionQuery) {
			oq.Order(questionoption.ByOptionOrder())
		}).
		WithTags().
		Order(question.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list questions", "error", err)
		return nil, err
	}

	result := make([]*entity.Question, len(rows))
	for i, row := range rows {
		result[i] = utils.ToQuestionWithEdges(row)
	}
	return result, nil
}
