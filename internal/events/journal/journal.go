// Package journal persists a durable record of every published event. The
// pipeline deliberately ships no compensation logic; when a later step fails
// after an earlier one created external state, the journal (and the bus) are
// what downstream reconciliation works from.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"onboard/internal/events"
)

// ErrNotFound is returned when no entries exist for a key.
var ErrNotFound = errors.New("not found")

// Entry is one recorded event.
type Entry struct {
	ID           uuid.UUID
	Name         string
	AggregateKey string
	Payload      []byte
	OccurredAt   time.Time
	RecordedAt   time.Time
}

// Store persists journal entries.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	ListByKey(ctx context.Context, aggregateKey string) ([]Entry, error)
}

// Sink adapts a Store to the events.Bus interface so the journal can sit
// behind the same fan-out as the broker publisher.
type Sink struct {
	store Store
}

func NewSink(store Store) *Sink {
	return &Sink{store: store}
}

func (s *Sink) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventName(), err)
	}
	entry := Entry{
		ID:           uuid.New(),
		Name:         event.EventName(),
		AggregateKey: event.AggregateKey(),
		Payload:      payload,
		OccurredAt:   event.OccurredAt(),
		RecordedAt:   time.Now(),
	}
	return s.store.Append(ctx, entry)
}
