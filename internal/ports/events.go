package ports

import "context"

// EventPublisher emits storefront activity events. Publishing is best
// effort; failures must never affect the customer-facing operation.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}
