package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/examtools/questionbank/gen/proto/questionbank/v1"
	"github.com/examtools/questionbank/internal/classify"
	"github.com/examtools/questionbank/internal/classify/openai"
	"github.com/examtools/questionbank/internal/common"
	"github.com/examtools/questionbank/internal/export"
	"github.com/examtools/questionbank/internal/pipeline"
	repo "github.com/examtools/questionbank/internal/repository"
	svc "github.com/examtools/questionbank/internal/server"
	"github.com/examtools/questionbank/internal/tagger"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	questionsRepo := repo.NewQuestionRepository(entc, logger)
	runsRepo := repo.NewRunRepository(entc, logger)

	taxonomy, err := loadTaxonomy(cfg.Tagging.TaxonomyPath)
	if err != nil {
		logger.Error("failed to load taxonomy", "path", cfg.Tagging.TaxonomyPath, "error", err)
		os.Exit(1)
	}
	var fallback classify.Classifier
	if cfg.Tagging.UseLLM {
		fallback = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("llm fallback enabled", "model", cfg.LLM.Model)
	}
	tg := tagger.New(taxonomy, cfg.Tagging.MinScore, fallback, logger)
	pipe := pipeline.New(logger, tg, pipeline.Config{})

	questionsService := svc.NewQuestionsService(questionsRepo, logger)
	v1.RegisterQuestionsServiceServer(grpcServer, questionsService)
	ingestionService := svc.NewIngestionService(pipe, runsRepo, questionsRepo, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)
	exportServer := svc.NewExportServer(export.NewService(logger), questionsRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, exportServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("bankd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

func loadTaxonomy(path string) (*tagger.Taxonomy, error) {
	if path == "" {
		return nil, nil // tagger falls back to the built-in taxonomy
	}
	return tagger.Load(path)
}
