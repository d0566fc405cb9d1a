package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/examtools/questionbank/gen/proto/questionbank/v1"
	"github.com/examtools/questionbank/internal/ingest"
	"github.com/examtools/questionbank/internal/pipeline"
	"github.com/examtools/questionbank/internal/repository"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	pipe         *pipeline.Pipeline
	runRepo      repository.RunRepository
	questionRepo repository.QuestionRepository
	logger       *slog.Logger
}

func NewIngestionService(pipe *pipeline.Pipeline, runRepo repository.RunRepository, questionRepo repository.QuestionRepository, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		pipe:         pipe,
		runRepo:      runRepo,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// IngestDirectory runs the extraction pipeline over a directory of per-year
// text files and persists the surviving questions under a fresh run.
func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	docs, err := ingest.ReadYearFiles(root)
	if err != nil {
		s.logger.Error("failed to read year files", "root", root, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "read directory: %v", err)
	}
	if len(docs) == 0 {
		return nil, status.Error(codes.InvalidArgument, "no text files found under root_path")
	}

	runID, err := s.runRepo.Start(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "start run: %v", err)
	}

	s.logger.Info("starting directory ingest", "run_id", runID, "root", root, "documents", len(docs))
	cfg := s.pipe.Cfg
	cfg.RequireFullOptions = cfg.RequireFullOptions || req.GetRequireFullOptions()
	run := pipeline.New(s.pipe.Logger, s.pipe.Tagger, cfg)

	res, err := run.Run(ctx, docs)
	if err != nil {
		s.logger.Error("pipeline.failed", "run_id", runID, "err", err)
		return nil, status.Errorf(codes.Internal, "pipeline: %v", err)
	}

	if _, err := s.questionRepo.SaveBatch(ctx, runID, res.Payload.Questions); err != nil {
		s.logger.Error("failed to save questions", "run_id", runID, "error", err)
		return nil, status.Errorf(codes.Internal, "save questions: %v", err)
	}

	summary := repository.RunSummary{
		Status:            res.Status(),
		TotalQuestions:    res.Payload.Count,
		DuplicatesRemoved: res.Payload.DuplicatesRemoved,
		ProblemCount:      len(res.Problems),
		YearCounts:        res.Report.YearCounts,
	}
	if err := s.runRepo.Finish(ctx, runID, summary); err != nil {
		return nil, status.Errorf(codes.Internal, "finish run: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"run_id", runID,
		"status", summary.Status,
		"total", summary.TotalQuestions,
		"duplicates_removed", summary.DuplicatesRemoved,
		"problems", summary.ProblemCount,
	)

	problems := make([]string, 0, len(res.Problems))
	for _, p := range res.Problems {
		problems = append(problems, p.String())
	}
	return &v1.IngestDirectoryResponse{
		RunId:             runID.String(),
		Status:            string(summary.Status),
		TotalQuestions:    int32(summary.TotalQuestions),
		DuplicatesRemoved: int32(summary.DuplicatesRemoved),
		Problems:          problems,
	}, nil
}
