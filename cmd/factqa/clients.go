package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/phrazzld/factqa/internal/config"
	"github.com/phrazzld/factqa/internal/generation"
	"github.com/phrazzld/factqa/internal/platform/anthropic"
	"github.com/phrazzld/factqa/internal/platform/gemini"
	"github.com/phrazzld/factqa/internal/platform/registry"
	"golang.org/x/time/rate"
)

// newClientFactory returns the registry factory for the configured provider.
// Clients share one http.Client bounded by the configured request timeout.
func newClientFactory(cfg config.LLMConfig) (registry.Factory, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case "anthropic":
		return func(_ context.Context, credential string) (generation.Completer, error) {
			c, err := anthropic.NewCompleter(credential, cfg.BaseURL, httpClient)
			if err != nil {
				return nil, err
			}
			return c, nil
		}, nil
	case "gemini":
		return func(ctx context.Context, credential string) (generation.Completer, error) {
			c, err := gemini.NewCompleter(ctx, credential, cfg.BaseURL, httpClient)
			if err != nil {
				return nil, err
			}
			return c, nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// newLimiter paces requests to requestsPerMinute. It returns nil when pacing
// is disabled.
func newLimiter(requestsPerMinute int) generation.Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
}
