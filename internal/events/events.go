package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Type names a pipeline event.
type Type string

// Event types emitted by the dialog orchestrator.
const (
	FactStarted        Type = "fact.started"
	FactSkipped        Type = "fact.skipped"
	PairEmitted        Type = "pair.emitted"
	TranslationAlready Type = "translation.already"
	TranslationSkipped Type = "translation.skipped"
)

// Event is a single progress notification.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      Type            `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Progress is the payload shared by all pipeline events. Language is empty for
// base-language events.
type Progress struct {
	FactIndex int    `json:"fact_index"`
	FactCount int    `json:"fact_count"`
	Fact      string `json:"fact,omitempty"`
	Language  string `json:"language,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Attempts  int    `json:"attempts,omitempty"`
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates an event with a fresh ID and the JSON-encoded payload.
func NewEvent(eventType Type, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Handler is implemented by components that react to events.
type Handler interface {
	HandleEvent(ctx context.Context, event *Event) error
}

// Emitter is implemented by components that publish events.
type Emitter interface {
	EmitEvent(ctx context.Context, event *Event) error
}
