package server

import (
	"context"
	"log/slog"
	"strings"

	v1 "github.com/examtools/questionbank/gen/proto/questionbank/v1"
	"github.com/examtools/questionbank/internal/common"
	"github.com/examtools/questionbank/internal/export"
	"github.com/examtools/questionbank/internal/repository"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc          *export.Service
	questionRepo repository.QuestionRepository
	logger       *slog.Logger
}

func NewExportServer(svc *export.Service, questionRepo repository.QuestionRepository, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, questionRepo: questionRepo, logger: logger}
}

func (s *ExportServer) ExportQuestions(ctx context.Context, req *v1.ExportQuestionsRequest) (*v1.ExportQuestionsResponse, error) {
	f := repository.Filter{
		Year:    int(req.GetYear()),
		Subject: strings.TrimSpace(req.GetSubject()),
	}

	qs, err := s.questionRepo.List(ctx, f)
	if err != nil {
		s.logger.Error("export.query.failed", "year", f.Year, "subject", f.Subject, "err", err)
		return nil, common.InternalErrorf("query questions: %v", err)
	}
	if len(qs) == 0 {
		return nil, common.NotFoundError("no questions match the filter")
	}

	xlsx, err := s.svc.QuestionsXLSX(qs)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "year", f.Year, "subject", f.Subject, "err", err)
		return nil, common.InternalError(err.Error())
	}

	return &v1.ExportQuestionsResponse{Xlsx: xlsx}, nil
}
