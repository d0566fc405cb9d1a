package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/examtools/questionbank/internal/ingest"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		raw      = flag.String("raw", "raw_pdfs", "directory containing per-year PDF subdirectories")
		out      = flag.String("out", "extracted_text", "directory for per-year text output")
		watch    = flag.Bool("watch", false, "keep running and re-extract when PDFs change")
		debounce = flag.Duration("debounce", 2*time.Second, "delay before re-extracting after a change")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := ingest.BuildYearTexts(ctx, *raw, *out, logger)
	if err != nil {
		printError("Error: extraction failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Extracted %d PDFs into %s\n", n, *out)

	if !*watch {
		return
	}

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{*raw},
		Debounce: *debounce,
	})
	if err != nil {
		printError("Error: watcher failed: %v\n", err)
		os.Exit(1)
	}
	logger.Info("watching for changes", "root", *raw)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("watch error", "error", err)
		case path, ok := <-events:
			if !ok {
				return
			}
			logger.Info("change detected", "path", path)
			if n, err := ingest.BuildYearTexts(ctx, *raw, *out, logger); err != nil {
				logger.Error("re-extraction failed", "error", err)
			} else {
				logger.Info("re-extraction complete", "pdfs", n)
			}
		}
	}
}
