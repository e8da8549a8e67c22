package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/factqa/internal/redact"
)

// CallerConfig holds the fixed request parameters and retry budget of a Caller.
type CallerConfig struct {
	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	// MaxAttempts is the total number of requests made before giving up.
	MaxAttempts int
	// Timeout bounds a single request. Zero means no per-request timeout.
	Timeout time.Duration
}

// Caller issues completion requests with exponential-backoff retry.
// It is not safe for concurrent use; the pipeline runs one call at a time.
type Caller struct {
	clients    ClientResolver
	credential string
	config     CallerConfig
	backoff    BackoffPolicy
	sleeper    Sleeper
	limiter    Limiter
	logger     *slog.Logger
}

// CallerOption customizes a Caller.
type CallerOption func(*Caller)

// WithBackoff replaces the default 1s-doubling backoff policy.
func WithBackoff(policy BackoffPolicy) CallerOption {
	return func(c *Caller) { c.backoff = policy }
}

// WithSleeper replaces the real timer used between attempts.
func WithSleeper(sleeper Sleeper) CallerOption {
	return func(c *Caller) { c.sleeper = sleeper }
}

// WithLimiter paces every attempt through limiter.
func WithLimiter(limiter Limiter) CallerOption {
	return func(c *Caller) { c.limiter = limiter }
}

// NewCaller creates a Caller that resolves its client for credential through
// clients on every attempt.
func NewCaller(
	clients ClientResolver,
	credential string,
	config CallerConfig,
	logger *slog.Logger,
	opts ...CallerOption,
) (*Caller, error) {
	if clients == nil {
		return nil, fmt.Errorf("%w: client resolver cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}
	if config.MaxAttempts < 1 {
		return nil, fmt.Errorf("%w: max attempts must be at least 1, got %d",
			ErrInvalidConfig, config.MaxAttempts)
	}

	c := &Caller{
		clients:    clients,
		credential: credential,
		config:     config,
		backoff:    ExponentialBackoff{Initial: time.Second},
		sleeper:    TimerSleeper{},
		logger:     logger.With("component", "model_caller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Ask sends prompt as a single user message and returns the reply text.
func (c *Caller) Ask(ctx context.Context, prompt string) (string, error) {
	return c.Call(ctx, []Message{{Role: RoleUser, Content: prompt}})
}

// Call sends the conversation and returns the model's reply. Every failure is
// retried until MaxAttempts requests have been made; the wait before retry k
// is backoff.Delay(k). On exhaustion it returns a *CallError carrying the last
// error and the attempt count. Context cancellation stops retrying at once.
func (c *Caller) Call(ctx context.Context, conversation []Message) (string, error) {
	req := Request{
		Model:        c.config.Model,
		SystemPrompt: c.config.SystemPrompt,
		Messages:     conversation,
		Temperature:  c.config.Temperature,
		MaxTokens:    c.config.MaxTokens,
	}

	var lastErr error
	for attempt := 1; attempt <= c.config.MaxAttempts; attempt++ {
		text, err := c.attempt(ctx, req)
		if err == nil {
			if attempt > 1 {
				c.logger.InfoContext(ctx, "model call succeeded after retries", "attempt", attempt)
			}
			return text, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		lastErr = err
		c.logger.WarnContext(ctx, "model call failed",
			"attempt", attempt,
			"max_attempts", c.config.MaxAttempts,
			"error", redact.Error(err))

		if attempt == c.config.MaxAttempts {
			break
		}

		delay := c.backoff.Delay(attempt)
		c.logger.InfoContext(ctx, "waiting before retrying", "delay", delay.String())
		if err := c.sleeper.Sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	callErr := &CallError{Attempts: c.config.MaxAttempts, Err: lastErr}
	c.logger.ErrorContext(ctx, "model call exhausted", "report", redact.Error(callErr))
	return "", callErr
}

func (c *Caller) attempt(ctx context.Context, req Request) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	client, err := c.clients.Client(ctx, c.credential)
	if err != nil {
		return "", fmt.Errorf("failed to obtain client: %w", err)
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	text, err := client.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
