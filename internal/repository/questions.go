package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/gen/ent"
	"github.com/examtools/questionbank/gen/ent/question"
	"github.com/examtools/questionbank/internal/common"
	"github.com/examtools/questionbank/internal/dedupe"
	"github.com/examtools/questionbank/internal/entity"
)

// Filter narrows question listings. Zero values mean "no constraint".
type Filter struct {
	Year    int
	Subject string
	Limit   int
	Offset  int
}

type QuestionRepository interface {
	SaveBatch(ctx context.Context, runID uuid.UUID, questions []*entity.Question) (int, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Question, error)
	List(ctx context.Context, f Filter) ([]*entity.Question, error)
	YearCounts(ctx context.Context) (map[int]int, error)
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

// SaveBatch persists questions for a run. Rows whose fingerprint already
// exists in the store are skipped, so re-running the same papers is safe.
// Returns the number of rows actually inserted.
func (r *questionRepository) SaveBatch(ctx context.Context, runID uuid.UUID, questions []*entity.Question) (int, error) {
	inserted := 0
	for _, q := range questions {
		fp := dedupe.Fingerprint(q)
		exists, err := r.client.Question.Query().
			Where(question.Fingerprint(fp)).
			Exist(ctx)
		if err != nil {
			r.logger.Error("failed to check fingerprint", "fingerprint", fp, "error", err)
			return inserted, common.WrapError(err, "check fingerprint")
		}
		if exists {
			continue
		}

		builder := r.client.Question.Create().
			SetYear(q.Year).
			SetSubject(q.Subject).
			SetTopic(q.Topic).
			SetQuestionText(q.QuestionText).
			SetOptions(q.Options).
			SetTaggingMethod(string(q.TaggingMethod)).
			SetTagConfidence(q.TagConfidence).
			SetFingerprint(fp).
			SetRunID(runID)
		if id, err := uuid.Parse(q.QuestionID); err == nil {
			builder = builder.SetID(id)
		}
		if q.Subtopic != "" {
			builder = builder.SetSubtopic(q.Subtopic)
		}
		if q.CorrectAnswer != "" {
			builder = builder.SetCorrectAnswer(q.CorrectAnswer)
		}
		if q.Explanation != "" {
			builder = builder.SetExplanation(q.Explanation)
		}
		if q.SourcePDF != "" {
			builder = builder.SetSourcePdf(q.SourcePDF)
		}

		if _, err := builder.Save(ctx); err != nil {
			r.logger.Error("failed to save question", "question_id", q.QuestionID, "error", err)
			return inserted, common.WrapError(err, "save question")
		}
		inserted++
	}
	r.logger.Info("repository.questions.saved", "run_id", runID, "inserted", inserted, "skipped", len(questions)-inserted)
	return inserted, nil
}

func (r *questionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get question")
	}
	return toQuestion(row), nil
}

func (r *questionRepository) List(ctx context.Context, f Filter) ([]*entity.Question, error) {
	q := r.client.Question.Query()
	if f.Year != 0 {
		q = q.Where(question.Year(f.Year))
	}
	if f.Subject != "" {
		q = q.Where(question.SubjectEqualFold(f.Subject))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	rows, err := q.Order(question.ByYear(), question.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list questions", "error", err)
		return nil, common.WrapError(err, "list questions")
	}

	result := make([]*entity.Question, len(rows))
	for i, row := range rows {
		result[i] = toQuestion(row)
	}
	return result, nil
}

func (r *questionRepository) YearCounts(ctx context.Context) (map[int]int, error) {
	var rows []struct {
		Year  int `json:"year"`
		Count int `json:"count"`
	}
	err := r.client.Question.Query().
		GroupBy(question.FieldYear).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to count questions by year", "error", err)
		return nil, common.WrapError(err, "year counts")
	}
	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Year] = row.Count
	}
	return counts, nil
}

func toQuestion(row *ent.Question) *entity.Question {
	return &entity.Question{
		QuestionID:    row.ID.String(),
		Year:          row.Year,
		Subject:       row.Subject,
		Topic:         row.Topic,
		Subtopic:      row.Subtopic,
		QuestionText:  row.QuestionText,
		Options:       row.Options,
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation,
		TaggingMethod: constants.TaggingMethod(row.TaggingMethod),
		TagConfidence: row.TagConfidence,
		SourcePDF:     row.SourcePdf,
	}
}
