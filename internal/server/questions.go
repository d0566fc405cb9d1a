package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/examtools/questionbank/gen/proto/questionbank/v1"
	"github.com/examtools/questionbank/internal/common"
	"github.com/examtools/questionbank/internal/entity"
	"github.com/examtools/questionbank/internal/repository"
)

type QuestionsService struct {
	v1.UnimplementedQuestionsServiceServer
	questionRepo repository.QuestionRepository
	logger       *slog.Logger
}

func NewQuestionsService(questionRepo repository.QuestionRepository, logger *slog.Logger) *QuestionsService {
	return &QuestionsService{
		questionRepo: questionRepo,
		logger:       logger,
	}
}

func (s *QuestionsService) ListQuestions(ctx context.Context, req *v1.ListQuestionsRequest) (*v1.ListQuestionsResponse, error) {
	if req.GetLimit() < 0 || req.GetOffset() < 0 {
		return nil, common.InvalidArgumentError("limit and offset must be non-negative")
	}

	f := repository.Filter{
		Year:    int(req.GetYear()),
		Subject: strings.TrimSpace(req.GetSubject()),
		Limit:   int(req.GetLimit()),
		Offset:  int(req.GetOffset()),
	}
	s.logger.Info("listing questions", "year", f.Year, "subject", f.Subject, "limit", f.Limit)
	qs, err := s.questionRepo.List(ctx, f)
	if err != nil {
		s.logger.Error("failed to list questions", "error", err)
		return nil, status.Errorf(codes.Internal, "list questions: %v", err)
	}

	out := make([]*v1.Question, 0, len(qs))
	for _, q := range qs {
		out = append(out, toPBQuestion(q))
	}
	return &v1.ListQuestionsResponse{Questions: out}, nil
}

func (s *QuestionsService) GetQuestion(ctx context.Context, req *v1.GetQuestionRequest) (*v1.GetQuestionResponse, error) {
	raw := strings.TrimSpace(req.GetId())
	if raw == "" {
		return nil, common.InvalidArgumentError("id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		s.logger.Error("invalid question id format", "id", raw, "error", err)
		return nil, common.InvalidArgumentError("id must be a UUID")
	}

	q, err := s.questionRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "question not found")
		}
		s.logger.Error("failed to get question", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get question: %v", err)
	}
	return &v1.GetQuestionResponse{Question: toPBQuestion(q)}, nil
}

func (s *QuestionsService) YearCounts(ctx context.Context, _ *v1.YearCountsRequest) (*v1.YearCountsResponse, error) {
	counts, err := s.questionRepo.YearCounts(ctx)
	if err != nil {
		s.logger.Error("failed to count questions by year", "error", err)
		return nil, status.Errorf(codes.Internal, "year counts: %v", err)
	}
	out := make(map[int32]int32, len(counts))
	for year, n := range counts {
		out[int32(year)] = int32(n)
	}
	return &v1.YearCountsResponse{Counts: out}, nil
}

func toPBQuestion(q *entity.Question) *v1.Question {
	return &v1.Question{
		Id:            q.QuestionID,
		Year:          int32(q.Year),
		Subject:       q.Subject,
		Topic:         q.Topic,
		Subtopic:      q.Subtopic,
		QuestionText:  q.QuestionText,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		TaggingMethod: string(q.TaggingMethod),
		TagConfidence: int32(q.TagConfidence),
		SourcePdf:     q.SourcePDF,
	}
}
