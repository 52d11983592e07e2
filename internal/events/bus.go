package events

import "context"

// Bus is the publication side of the event transport. Implementations are
// expected to be safe for concurrent use and to provide at-least-once
// delivery; the pipeline does not retry a failed publish.
type Bus interface {
	Publish(ctx context.Context, event Event) error
}
