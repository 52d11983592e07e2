// Package memory provides an in-process Bus that records published events.
// It backs unit tests and local development where no broker is available.
package memory

import (
	"context"
	"sync"

	"onboard/internal/events"
)

// Bus records events in publication order.
type Bus struct {
	mu        sync.Mutex
	published []events.Event

	// PublishErr, when set, is returned by every Publish call. Tests use it
	// to exercise the pipeline's publish-failure handling.
	PublishErr error
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Publish(_ context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.PublishErr != nil {
		return b.PublishErr
	}
	b.published = append(b.published, event)
	return nil
}

// Events returns a copy of everything published so far, in order.
func (b *Bus) Events() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]events.Event, len(b.published))
	copy(out, b.published)
	return out
}

// Names returns the event names in publication order, a convenient shape for
// asserting ordering contracts.
func (b *Bus) Names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, 0, len(b.published))
	for _, e := range b.published {
		names = append(names, e.EventName())
	}
	return names
}
