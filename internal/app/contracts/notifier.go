package contracts

import "context"

// Publisher delivers events to a message queue.
type Publisher interface {
	Publish(ctx context.Context, queueName string, payload interface{}) error
}
