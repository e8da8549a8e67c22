package events

import (
	"context"
	"log/slog"
)

// InMemoryEmitter delivers events synchronously to every registered handler,
// in registration order.
type InMemoryEmitter struct {
	handlers []Handler
	logger   *slog.Logger
}

// NewInMemoryEmitter creates an emitter with no handlers.
func NewInMemoryEmitter(logger *slog.Logger) *InMemoryEmitter {
	return &InMemoryEmitter{
		logger: logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds handler to the fan-out list.
func (e *InMemoryEmitter) RegisterHandler(handler Handler) {
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered new event handler", "handler_count", len(e.handlers))
}

// EmitEvent hands event to every handler. All handlers run even if one fails;
// the first error is returned.
func (e *InMemoryEmitter) EmitEvent(ctx context.Context, event *Event) error {
	var firstErr error
	for i, handler := range e.handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.ErrorContext(ctx, "handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
