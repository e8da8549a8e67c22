package events

import (
	"context"
	"fmt"
	"log/slog"
)

// Summary tallies pipeline events into run totals.
type Summary struct {
	FactsStarted        int `json:"facts_started"`
	FactsSkipped        int `json:"facts_skipped"`
	PairsEmitted        int `json:"pairs_emitted"`
	TranslationsAlready int `json:"translations_already"`
	TranslationsSkipped int `json:"translations_skipped"`
}

// HandleEvent implements Handler.
func (s *Summary) HandleEvent(_ context.Context, event *Event) error {
	switch event.Type {
	case FactStarted:
		s.FactsStarted++
	case FactSkipped:
		s.FactsSkipped++
	case PairEmitted:
		s.PairsEmitted++
	case TranslationAlready:
		s.TranslationsAlready++
	case TranslationSkipped:
		s.TranslationsSkipped++
	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}
	return nil
}

// LogAttrs returns the totals as slog attributes.
func (s *Summary) LogAttrs() []any {
	return []any{
		"facts_started", s.FactsStarted,
		"facts_skipped", s.FactsSkipped,
		"pairs_emitted", s.PairsEmitted,
		"translations_already", s.TranslationsAlready,
		"translations_skipped", s.TranslationsSkipped,
	}
}

// LogHandler writes one progress line per event.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a LogHandler writing to logger.
func NewLogHandler(logger *slog.Logger) *LogHandler {
	return &LogHandler{logger: logger.With("component", "progress")}
}

// HandleEvent implements Handler.
func (h *LogHandler) HandleEvent(ctx context.Context, event *Event) error {
	var p Progress
	if err := event.UnmarshalPayload(&p); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", event.Type, err)
	}

	attrs := []any{"fact", p.FactIndex + 1, "of", p.FactCount}
	if p.Language != "" {
		attrs = append(attrs, "language", p.Language)
	}

	switch event.Type {
	case FactStarted:
		h.logger.InfoContext(ctx, "generating dialogs for fact", append(attrs, "excerpt", p.Fact)...)
	case FactSkipped:
		h.logger.WarnContext(ctx, "failed to convert fact to a question, skipping it",
			append(attrs, "reason", p.Reason)...)
	case PairEmitted:
		h.logger.DebugContext(ctx, "dialog pair emitted", attrs...)
	case TranslationAlready:
		h.logger.InfoContext(ctx, "text is already in target language", attrs...)
	case TranslationSkipped:
		h.logger.WarnContext(ctx, "failed to get valid translation, skipping it",
			append(attrs, "attempts", p.Attempts, "reason", p.Reason)...)
	}
	return nil
}
