package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/factqa/internal/config"
	"github.com/phrazzld/factqa/internal/dataset"
	"github.com/phrazzld/factqa/internal/events"
	"github.com/phrazzld/factqa/internal/facts"
	"github.com/phrazzld/factqa/internal/generation"
	"github.com/phrazzld/factqa/internal/platform/registry"
	"github.com/phrazzld/factqa/internal/prompt"
	"github.com/phrazzld/factqa/internal/service"
)

// application holds the wired pipeline for a single run.
type application struct {
	config *config.Config
	logger *slog.Logger

	caller       *generation.Caller
	orchestrator *service.Orchestrator
	summary      *events.Summary
}

// newApplication creates an application with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		summary: &events.Summary{},
	}

	factory, err := newClientFactory(cfg.LLM)
	if err != nil {
		return nil, err
	}
	clients, err := registry.New(factory, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create client registry: %w", err)
	}

	opts := []generation.CallerOption{
		generation.WithBackoff(generation.ExponentialBackoff{
			Initial: cfg.LLM.InitialBackoff,
			Max:     cfg.LLM.MaxBackoff,
		}),
	}
	if limiter := newLimiter(cfg.LLM.RequestsPerMinute); limiter != nil {
		opts = append(opts, generation.WithLimiter(limiter))
		logger.Info("request pacing enabled", "requests_per_minute", cfg.LLM.RequestsPerMinute)
	}

	app.caller, err = generation.NewCaller(clients, cfg.LLM.APIKey, generation.CallerConfig{
		Model:        cfg.LLM.Model,
		SystemPrompt: cfg.LLM.SystemPrompt,
		Temperature:  cfg.LLM.Temperature,
		MaxTokens:    cfg.LLM.MaxTokens,
		MaxAttempts:  cfg.LLM.MaxAttempts,
		Timeout:      cfg.LLM.Timeout,
	}, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create model caller: %w", err)
	}

	catalog, err := prompt.NewCatalog()
	if err != nil {
		return nil, err
	}

	questions, err := service.NewQuestionSynthesizer(app.caller, catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create question synthesizer: %w", err)
	}
	translator, err := service.NewTranslator(app.caller, catalog, cfg.Generation.TranslationMaxAttempts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}

	emitter := events.NewInMemoryEmitter(logger)
	emitter.RegisterHandler(app.summary)
	emitter.RegisterHandler(events.NewLogHandler(logger))

	app.orchestrator, err = service.NewOrchestrator(questions, translator, emitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialog orchestrator: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run loads the facts, generates dialog pairs and writes the dataset. Facts
// or translations that fail are skipped; only an unreadable fact source, an
// unwritable output path or cancellation fail the run.
func (app *application) Run(ctx context.Context) error {
	start := time.Now()
	gen := app.config.Generation

	loaded, err := facts.Load(gen.FactsPath, gen.FactLimit)
	if err != nil {
		return err
	}
	app.logger.InfoContext(ctx, "facts loaded", "count", len(loaded), "path", gen.FactsPath)

	pairs, err := app.orchestrator.Generate(ctx, loaded, gen.Languages)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			app.logger.WarnContext(ctx, "generation interrupted, nothing written",
				"pairs_generated", len(pairs))
		}
		return fmt.Errorf("generation stopped: %w", err)
	}

	if err := dataset.Write(gen.OutputPath, pairs); err != nil {
		return err
	}

	attrs := append(app.summary.LogAttrs(),
		"output_path", gen.OutputPath,
		"records", len(pairs),
		"duration", time.Since(start).Round(time.Millisecond).String())
	app.logger.InfoContext(ctx, "dataset written", attrs...)
	return nil
}
