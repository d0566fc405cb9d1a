package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/examtools/questionbank/internal/classify"
	"github.com/examtools/questionbank/internal/classify/openai"
	"github.com/examtools/questionbank/internal/common"
	"github.com/examtools/questionbank/internal/dataset"
	"github.com/examtools/questionbank/internal/export"
	"github.com/examtools/questionbank/internal/ingest"
	"github.com/examtools/questionbank/internal/pipeline"
	repo "github.com/examtools/questionbank/internal/repository"
	"github.com/examtools/questionbank/internal/tagger"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		root     = flag.String("root", "", "directory of per-year text files (or pass payload JSON files as args)")
		out      = flag.String("out", "", "output JSON path (defaults to <root>/../questions.json)")
		xlsxOut  = flag.String("xlsx", "", "also write an XLSX workbook to this path")
		sqlite   = flag.String("sqlite", "", "also persist questions to this SQLite file")
		taxPath  = flag.String("taxonomy", "", "JSON taxonomy override (defaults to built-in)")
		minScore = flag.Int("min-score", 2, "keyword score a rule match needs to stand on its own")
		useLLM   = flag.Bool("use-llm", false, "fall back to the LLM for low-confidence matches")
		strict   = flag.Bool("strict", false, "discard questions without all four options")
	)
	flag.Parse()

	merge := flag.Args()
	if *root == "" && len(merge) == 0 {
		printError("Error: --root or at least one payload JSON file is required\n")
		os.Exit(1)
	}
	if *out == "" {
		base := *root
		if base == "" {
			base = merge[0]
		}
		*out = filepath.Join(filepath.Dir(base), "questions.json")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var taxonomy *tagger.Taxonomy
	if *taxPath != "" {
		t, err := tagger.Load(*taxPath)
		if err != nil {
			logger.Error("failed to load taxonomy", "path", *taxPath, "error", err)
			os.Exit(1)
		}
		taxonomy = t
	}

	var fallback classify.Classifier
	if *useLLM {
		if cfg.LLM.APIKey == "" {
			printError("Error: --use-llm requires OPENAI_API_KEY\n")
			os.Exit(1)
		}
		fallback = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("llm fallback enabled", "model", cfg.LLM.Model)
	}

	tg := tagger.New(taxonomy, *minScore, fallback, logger)
	pipe := pipeline.New(logger, tg, pipeline.Config{RequireFullOptions: *strict})

	var res *pipeline.Result
	if *root != "" {
		docs, err := ingest.ReadYearFiles(*root)
		if err != nil {
			logger.Error("failed to read year files", "root", *root, "error", err)
			os.Exit(1)
		}
		if len(docs) == 0 {
			printError("Error: no text files found under %s\n", *root)
			os.Exit(1)
		}
		res, err = pipe.Run(ctx, docs)
		if err != nil {
			logger.Error("pipeline failed", "error", err)
			os.Exit(1)
		}
	} else {
		qs, err := dataset.Merge(merge)
		if err != nil {
			logger.Error("failed to merge payloads", "error", err)
			os.Exit(1)
		}
		logger.Info("payloads merged", "files", len(merge), "questions", len(qs))
		res, err = pipe.RunQuestions(ctx, qs)
		if err != nil {
			logger.Error("pipeline failed", "error", err)
			os.Exit(1)
		}
	}

	if err := dataset.WriteJSON(*out, res.Payload); err != nil {
		logger.Error("failed to write dataset", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("dataset written",
		"path", *out,
		"questions", res.Payload.Count,
		"duplicates_removed", res.Payload.DuplicatesRemoved,
	)

	if *xlsxOut != "" {
		xlsx, err := export.NewService(logger).QuestionsXLSX(res.Payload.Questions)
		if err != nil {
			logger.Error("failed to build workbook", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, xlsx, 0o644); err != nil {
			logger.Error("failed to write workbook", "path", *xlsxOut, "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "path", *xlsxOut)
	}

	if *sqlite != "" {
		entc, err := repo.OpenSQLite(*sqlite, logger)
		if err != nil {
			os.Exit(1)
		}
		defer entc.Close()
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("failed to create schema", "error", err)
			os.Exit(1)
		}
		runs := repo.NewRunRepository(entc, logger)
		runID, err := runs.Start(ctx)
		if err != nil {
			os.Exit(1)
		}
		inserted, err := repo.NewQuestionRepository(entc, logger).SaveBatch(ctx, runID, res.Payload.Questions)
		if err != nil {
			os.Exit(1)
		}
		summary := repo.RunSummary{
			Status:            res.Status(),
			TotalQuestions:    res.Payload.Count,
			DuplicatesRemoved: res.Payload.DuplicatesRemoved,
			ProblemCount:      len(res.Problems),
			YearCounts:        res.Report.YearCounts,
		}
		if err := runs.Finish(ctx, runID, summary); err != nil {
			os.Exit(1)
		}
		logger.Info("questions persisted", "path", *sqlite, "inserted", inserted)
	}

	fmt.Printf("Extraction complete!\n")
	fmt.Printf("- Questions: %d\n", res.Payload.Count)
	fmt.Printf("- Duplicates removed: %d\n", res.Payload.DuplicatesRemoved)
	fmt.Printf("- Blocks dropped: %d\n", res.Dropped)
	for _, year := range res.Report.SortedYears() {
		fmt.Printf("- %s: %d questions\n", year, res.Report.YearCounts[year])
	}

	if len(res.Problems) > 0 {
		printError("Validation found %d problem(s):\n", len(res.Problems))
		for _, p := range res.Problems {
			printError("  %s\n", p)
		}
		os.Exit(1)
	}
}
