package interfaces

import "context"

// IEventPublisher publishes domain events (workflow transitions, day-run completion).
type IEventPublisher interface {
	Publish(ctx context.Context, subject string, payload []byte) error
	Close() error
}
