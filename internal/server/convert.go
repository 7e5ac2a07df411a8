package server

import (
	"time"

	"github.com/google/uuid"

	"github.com/qforge/exambank/constants"
	exambankv1 "github.com/qforge/exambank/gen/proto/exambank/v1"
	"github.com/qforge/exambank/internal/entity"
)

func toPBOptions(opts []entity.ExtractedOption) []*exambankv1.QuestionOption {
	out := make([]*exambankv1.QuestionOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, &exambankv1.QuestionOption{
			Text:      o.Text,
			IsCorrect: o.IsCorrect,
			Order:     int32(o.Order),
		})
	}
	return out
}

func toPBQuestion(q *entity.Question) *exambankv1.Question {
	pb := &exambankv1.Question{
		Id:             q.ID.String(),
		Stem:           q.Stem,
		Difficulty:     string(q.Difficulty),
		IsPreviousYear: q.IsPreviousYear,
		Options:        toPBOptions(q.Options),
		TagNames:       q.TagNames,
		CreatedAt:      q.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:      q.UpdatedAt.Format(time.RFC3339Nano),
	}
	if q.Explanation != nil {
		pb.Explanation = *q.Explanation
	}
	if q.YearAppeared != nil {
		pb.YearAppeared = int32(*q.YearAppeared)
	}
	if q.SubjectID != nil {
		pb.SubjectId = q.SubjectID.String()
	}
	return pb
}

func toPBExtracted(q *entity.ExtractedQuestion) *exambankv1.Question {
	pb := &exambankv1.Question{
		Stem:           q.Stem,
		Difficulty:     string(q.Difficulty),
		IsPreviousYear: q.IsPreviousYear,
		Options:        toPBOptions(q.Options),
		TagNames:       q.TagNames,
	}
	if q.Explanation != nil {
		pb.Explanation = *q.Explanation
	}
	if q.YearAppeared != nil {
		pb.YearAppeared = int32(*q.YearAppeared)
	}
	if q.Subject != nil {
		pb.Subject = string(*q.Subject)
	}
	if q.SubjectID != nil {
		pb.SubjectId = q.SubjectID.String()
	}
	return pb
}

// fromPBQuestion maps an inbound record to the extraction transfer type.
// Unparseable subject IDs are dropped rather than rejected; the importer
// then falls back to the subject name.
func fromPBQuestion(pb *exambankv1.Question) entity.ExtractedQuestion {
	q := entity.ExtractedQuestion{
		Stem:           pb.GetStem(),
		Difficulty:     constants.Difficulty(pb.GetDifficulty()),
		IsPreviousYear: pb.GetIsPreviousYear(),
		TagNames:       pb.GetTagNames(),
	}
	if e := pb.GetExplanation(); e != "" {
		q.Explanation = &e
	}
	if y := pb.GetYearAppeared(); y != 0 {
		year := int(y)
		q.YearAppeared = &year
	}
	if s := pb.GetSubject(); s != "" {
		subj := constants.Subject(s)
		q.Subject = &subj
	}
	if sid := pb.GetSubjectId(); sid != "" {
		if id, err := uuid.Parse(sid); err == nil {
			q.SubjectID = &id
		}
	}
	for _, o := range pb.GetOptions() {
		q.Options = append(q.Options, entity.ExtractedOption{
			Text:      o.GetText(),
			IsCorrect: o.GetIsCorrect(),
			Order:     int(o.GetOrder()),
		})
	}
	return q
}

func toPBImportError(e *entity.ImportError) *exambankv1.ImportError {
	pb := &exambankv1.ImportError{
		Index: int32(e.Index),
		Error: e.Error,
	}
	if e.Question != nil {
		pb.Question = toPBExtracted(e.Question)
	}
	return pb
}

func toPBImportResult(result *entity.ImportResult) *exambankv1.ImportQuestionsResponse {
	resp := &exambankv1.ImportQuestionsResponse{
		Total:       int32(result.Total),
		Successful:  int32(result.Successful),
		Failed:      int32(result.Failed),
		QuestionIds: result.QuestionIDs,
	}
	for i := range result.Errors {
		resp.Errors = append(resp.Errors, toPBImportError(&result.Errors[i]))
	}
	return resp
}

func toPBJob(job *entity.ProcessingJob) *exambankv1.ProcessingJob {
	pb := &exambankv1.ProcessingJob{
		JobId:              job.ID.String(),
		Filename:           job.Filename,
		Status:             string(job.Status),
		Progress:           int32(job.Progress),
		TotalQuestions:     int32(job.TotalQuestions),
		ProcessedQuestions: int32(job.ProcessedQuestions),
		StartedAt:          job.StartedAt.Format(time.RFC3339Nano),
	}
	for _, be := range job.Errors {
		pb.Errors = append(pb.Errors, &exambankv1.BlockError{
			BlockIndex: int32(be.BlockIndex),
			Error:      be.Error,
		})
	}
	for i := range job.Results {
		pb.Results = append(pb.Results, toPBExtracted(&job.Results[i]))
	}
	pb.QuestionIds = job.QuestionIDs
	for i := range job.ImportErrors {
		pb.ImportErrors = append(pb.ImportErrors, toPBImportError(&job.ImportErrors[i]))
	}
	if job.ErrorMessage != nil {
		pb.ErrorMessage = *job.ErrorMessage
	}
	if job.FinishedAt != nil {
		pb.FinishedAt = job.FinishedAt.Format(time.RFC3339Nano)
	}
	return pb
}
