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
	"github.com/phrazzld/factqa/internal/tagtext"
)

// DefaultTranslationAttempts bounds the translator's own retry loop.
const DefaultTranslationAttempts = 10

// TranslationState is a state of the translator's attempt loop.
type TranslationState int

const (
	StateAttempting TranslationState = iota
	StateAlready
	StateRefused
	StateParsed
	StateFailed
	StateExhausted
)

// String returns the lower-case name of the state.
func (s TranslationState) String() string {
	switch s {
	case StateAttempting:
		return "attempting"
	case StateAlready:
		return "already"
	case StateRefused:
		return "refused"
	case StateParsed:
		return "parsed"
	case StateFailed:
		return "failed"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether the loop stops in state s.
func (s TranslationState) Terminal() bool {
	return s == StateAlready || s == StateParsed || s == StateExhausted
}

// Translation is the successful result of Translate.
type Translation struct {
	// Pair is the translated pair, or the original pair when Already is set.
	Pair domain.DialogPair
	// Already is set when the model reported the pair is already in the
	// target language.
	Already bool
	State   TranslationState
	// Attempts is the number of translator attempts used, counting the
	// successful one.
	Attempts int
}

// Translator translates question/answer pairs, retrying refusals and
// malformed replies up to a fixed number of attempts.
type Translator struct {
	model       Model
	prompts     *prompt.Catalog
	maxAttempts int
	logger      *slog.Logger
}

// NewTranslator creates a Translator that makes at most maxAttempts model
// calls per translation.
func NewTranslator(model Model, prompts *prompt.Catalog, maxAttempts int, logger *slog.Logger) (*Translator, error) {
	if model == nil {
		return nil, errors.New("model cannot be nil")
	}
	if prompts == nil {
		return nil, errors.New("prompt catalog cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("max attempts must be at least 1, got %d", maxAttempts)
	}

	return &Translator{
		model:       model,
		prompts:     prompts,
		maxAttempts: maxAttempts,
		logger:      logger.With("component", "translator"),
	}, nil
}

// Translate translates pair into language. Refused and malformed replies are
// retried; an <already> reply returns the input pair unchanged with Already
// set. When the budget is spent, or the model call itself fails after its own
// retries, Translate returns a *TranslationError matching
// ErrTranslationExhausted. Context cancellation is returned as is.
func (t *Translator) Translate(ctx context.Context, pair domain.DialogPair, language string) (*Translation, error) {
	target := prompt.LanguageName(language)
	text, err := t.prompts.TranslatePair(pair.Instruction, pair.Answer, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	state := StateAttempting
	attempts := 0
	for {
		if attempts == t.maxAttempts {
			return nil, &TranslationError{Language: target, Attempts: attempts, LastState: state}
		}
		attempts++

		raw, err := t.model.Ask(ctx, text)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			t.logger.WarnContext(ctx, "model call for translation failed",
				"language", target,
				"attempt", attempts,
				"error", redact.Error(err))
			return nil, &TranslationError{Language: target, Attempts: attempts, LastState: StateExhausted, Err: err}
		}

		reply := tagtext.Classify(raw)
		switch reply.Kind {
		case tagtext.Already:
			state = StateAlready
			return &Translation{Pair: pair, Already: true, State: state, Attempts: attempts}, nil

		case tagtext.Parsed:
			state = StateParsed
			translated, err := domain.NewDialogPair(reply.Question, reply.Answer)
			if err != nil {
				state = StateFailed
				continue
			}
			if attempts > 1 {
				t.logger.InfoContext(ctx, "translation succeeded after retries",
					"language", target,
					"attempts", attempts)
			}
			return &Translation{Pair: translated, State: state, Attempts: attempts}, nil

		case tagtext.Refused:
			state = StateRefused
			t.logger.DebugContext(ctx, "model refused to translate",
				"language", target,
				"attempt", attempts,
				"reply", excerpt(raw, 200))

		default:
			state = StateFailed
			t.logger.DebugContext(ctx, "failed to parse translation reply",
				"language", target,
				"attempt", attempts,
				"reply", excerpt(raw, 200))
		}
	}
}

func excerpt(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}
