package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/qforge/exambank/internal/extract"
	"github.com/qforge/exambank/internal/jobs"
	"github.com/qforge/exambank/internal/pipeline"
)

// extract runs the pipeline on one text file without a server or database
// and prints the extracted questions as JSON.
func main() {
	maxBlocks := flag.Int("max-blocks", extract.DefaultMaxBlocks, "cap on question blocks per document")
	verbose := flag.Bool("v", false, "log pipeline progress to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extract [-max-blocks N] [-v] <textfile>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := jobs.NewMemoryStore()
	job, err := store.Create(ctx, filepath.Base(path))
	if err != nil {
		logger.Error("failed to create job", "error", err)
		os.Exit(1)
	}

	proc := pipeline.NewProcessor(logger, store, *maxBlocks)
	questions, err := proc.Process(ctx, job.ID, string(raw), filepath.Base(path))
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	final, err := store.Get(ctx, job.ID)
	if err == nil {
		for _, be := range final.Errors {
			fmt.Fprintf(os.Stderr, "block %d: %s\n", be.BlockIndex, be.Error)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(questions); err != nil {
		logger.Error("failed to encode output", "error", err)
		os.Exit(1)
	}
}
