package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/examtools/questionbank/constants"
	"github.com/examtools/questionbank/gen/ent"
	"github.com/examtools/questionbank/internal/common"
)

// RunSummary is what a finished pipeline run reports back for bookkeeping.
type RunSummary struct {
	Status            constants.RunStatus
	TotalQuestions    int
	DuplicatesRemoved int
	ProblemCount      int
	YearCounts        map[string]int
}

type RunRepository interface {
	Start(ctx context.Context) (uuid.UUID, error)
	Finish(ctx context.Context, id uuid.UUID, summary RunSummary) error
}

type runRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRunRepository(client *ent.Client, logger *slog.Logger) RunRepository {
	return &runRepository{
		client: client,
		logger: logger,
	}
}

func (r *runRepository) Start(ctx context.Context) (uuid.UUID, error) {
	row, err := r.client.IngestRun.Create().
		SetStatus(string(constants.RunStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start ingest run", "error", err)
		return uuid.Nil, common.WrapError(err, "start run")
	}
	r.logger.Info("repository.run.started", "run_id", row.ID)
	return row.ID, nil
}

func (r *runRepository) Finish(ctx context.Context, id uuid.UUID, summary RunSummary) error {
	now := time.Now()
	_, err := r.client.IngestRun.UpdateOneID(id).
		SetStatus(string(summary.Status)).
		SetTotalQuestions(summary.TotalQuestions).
		SetDuplicatesRemoved(summary.DuplicatesRemoved).
		SetProblemCount(summary.ProblemCount).
		SetYearCounts(summary.YearCounts).
		SetFinishedAt(now).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish ingest run", "run_id", id, "error", err)
		return common.WrapError(err, "finish run")
	}
	r.logger.Info("repository.run.finished", "run_id", id, "status", summary.Status)
	return nil
}
