// Package main implements the factqa command, which turns a list of facts
// about a person into a multilingual question/answer fine-tuning dataset.
//
// Settings come from the environment (FACTQA_*), an optional .env file and an
// optional factqa.{yaml,toml,json} file in the working directory. There are no
// command-line flags.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/phrazzld/factqa/internal/config"
	"github.com/phrazzld/factqa/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "factqa: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run loads configuration, wires the pipeline and produces the dataset.
func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(stdout, cfg.Log).With("run_id", uuid.NewString())
	log.Info("configuration loaded",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model,
		"facts_path", cfg.Generation.FactsPath,
		"output_path", cfg.Generation.OutputPath,
		"languages", cfg.Generation.Languages,
		"fact_limit", cfg.Generation.FactLimit)

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
