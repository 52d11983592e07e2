package events

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Fanout publishes every event to all configured sinks concurrently. A
// failure in one sink does not stop delivery to the others; the first error
// is returned after all sinks have been attempted.
type Fanout struct {
	sinks []Bus
}

func NewFanout(sinks ...Bus) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Publish(ctx context.Context, event Event) error {
	g := new(errgroup.Group)
	for _, sink := range f.sinks {
		g.Go(func() error {
			return sink.Publish(ctx, event)
		})
	}
	return g.Wait()
}
