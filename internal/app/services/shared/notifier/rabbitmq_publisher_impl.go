package notifier

import (
	"context"
	"sync"

	"healthcamp-service/internal/app/contracts"
	"healthcamp-service/internal/pkg/constvars"
	"healthcamp-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	Channel *amqp091.Channel
	mu      sync.Mutex
}

// NewRabbitMQPublisher opens a channel on the connection and declares queueName as durable.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queueName string) (contracts.Publisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{Channel: channel}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.Channel.PublishWithContext(ctx, "", queueName, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	return nil
}
