package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/factqa/internal/domain"
	"github.com/phrazzld/factqa/internal/events"
	"github.com/phrazzld/factqa/internal/redact"
)

// Questioner synthesizes a question for a fact.
type Questioner interface {
	Synthesize(ctx context.Context, fact domain.Fact) (string, error)
}

// PairTranslator translates a dialog pair into a target language.
type PairTranslator interface {
	Translate(ctx context.Context, pair domain.DialogPair, language string) (*Translation, error)
}

// Orchestrator drives question synthesis and translation across all facts
// and target languages, accumulating dialog pairs in order.
type Orchestrator struct {
	questions  Questioner
	translator PairTranslator
	emitter    events.Emitter
	logger     *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(
	questions Questioner,
	translator PairTranslator,
	emitter events.Emitter,
	logger *slog.Logger,
) (*Orchestrator, error) {
	if questions == nil {
		return nil, errors.New("questioner cannot be nil")
	}
	if translator == nil {
		return nil, errors.New("translator cannot be nil")
	}
	if emitter == nil {
		return nil, errors.New("event emitter cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Orchestrator{
		questions:  questions,
		translator: translator,
		emitter:    emitter,
		logger:     logger.With("component", "dialog_orchestrator"),
	}, nil
}

// Generate returns the dialog pairs for facts. For each fact the base pair
// (question, fact) comes first, followed by one translated pair per language in
// the order given. A fact whose question cannot be synthesized contributes no
// pairs. Translations that are exhausted or already in the target language are
// left out. The only error returned is context cancellation, together with
// the pairs accumulated so far.
func (o *Orchestrator) Generate(ctx context.Context, facts []domain.Fact, languages []string) ([]domain.DialogPair, error) {
	pairs := make([]domain.DialogPair, 0, len(facts)*(1+len(languages)))

	for i, fact := range facts {
		if err := ctx.Err(); err != nil {
			return pairs, err
		}

		progress := events.Progress{FactIndex: i, FactCount: len(facts)}
		o.emit(ctx, events.FactStarted, withFact(progress, fact))

		question, err := o.questions.Synthesize(ctx, fact)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return pairs, ctxErr
			}
			skipped := withFact(progress, fact)
			skipped.Reason = redact.Error(err)
			o.emit(ctx, events.FactSkipped, skipped)
			continue
		}

		base, err := domain.NewDialogPair(question, fact.String())
		if err != nil {
			skipped := withFact(progress, fact)
			skipped.Reason = err.Error()
			o.emit(ctx, events.FactSkipped, skipped)
			continue
		}
		pairs = append(pairs, base)
		o.emit(ctx, events.PairEmitted, progress)

		for _, language := range languages {
			translation, err := o.translator.Translate(ctx, base, language)
			variant := progress
			variant.Language = language

			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return pairs, ctxErr
				}
				variant.Reason = redact.Error(err)
				var terr *TranslationError
				if errors.As(err, &terr) {
					variant.Attempts = terr.Attempts
				}
				o.emit(ctx, events.TranslationSkipped, variant)
				continue
			}

			if translation.Already {
				variant.Attempts = translation.Attempts
				o.emit(ctx, events.TranslationAlready, variant)
				continue
			}

			pairs = append(pairs, translation.Pair)
			o.emit(ctx, events.PairEmitted, variant)
		}
	}

	return pairs, nil
}

// emit publishes a progress event. Emission failures are logged by the
// emitter and never interrupt generation.
func (o *Orchestrator) emit(ctx context.Context, eventType events.Type, progress events.Progress) {
	event, err := events.NewEvent(eventType, progress)
	if err != nil {
		o.logger.ErrorContext(ctx, "failed to create event", "event_type", eventType, "error", err)
		return
	}
	_ = o.emitter.EmitEvent(ctx, event)
}

func withFact(p events.Progress, fact domain.Fact) events.Progress {
	p.Fact = fact.Excerpt(60)
	return p
}
