package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/factqa/internal/domain"
	"github.com/phrazzld/factqa/internal/prompt"
	"github.com/phrazzld/factqa/internal/redact"
)

// QuestionSynthesizer turns one fact into one open, generic question.
type QuestionSynthesizer struct {
	model   Model
	prompts *prompt.Catalog
	logger  *slog.Logger
}

// NewQuestionSynthesizer creates a QuestionSynthesizer.
func NewQuestionSynthesizer(model Model, prompts *prompt.Catalog, logger *slog.Logger) (*QuestionSynthesizer, error) {
	if model == nil {
		return nil, errors.New("model cannot be nil")
	}
	if prompts == nil {
		return nil, errors.New("prompt catalog cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &QuestionSynthesizer{
		model:   model,
		prompts: prompts,
		logger:  logger.With("component", "question_synthesizer"),
	}, nil
}

// Synthesize asks the model for a question whose answer is fact. It makes
// exactly one model call. Any failure, including a blank reply, is reported as
// ErrQuestionFailed except context cancellation, which is returned as is.
func (s *QuestionSynthesizer) Synthesize(ctx context.Context, fact domain.Fact) (string, error) {
	text, err := s.prompts.FactToQuestion(fact)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	reply, err := s.model.Ask(ctx, text)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		s.logger.WarnContext(ctx, "model call for question failed",
			"fact", fact.Excerpt(60),
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %w", ErrQuestionFailed, err)
	}

	question := strings.TrimSpace(reply)
	if question == "" {
		return "", fmt.Errorf("%w: blank reply", ErrQuestionFailed)
	}
	return question, nil
}
