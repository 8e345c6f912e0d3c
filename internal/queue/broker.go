package queue

import (
	"context"
	"encoding/json"
	"fmt"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueOfferImport = "offer-import"
	QueueOfferStatus = "offer-status"
	QueueOrderPlaced = "order-placed"

	QueueOfferImportDLQ = QueueOfferImport + dlqSuffix
	QueueOfferStatusDLQ = QueueOfferStatus + dlqSuffix
	QueueOrderPlacedDLQ = QueueOrderPlaced + dlqSuffix

	dlqSuffix = "-dlq"
)

// Queues lists every queue the service declares, dead-letter queues included.
func Queues() []string {
	return []string{
		QueueOfferImport,
		QueueOfferStatus,
		QueueOrderPlaced,
		QueueOfferImportDLQ,
		QueueOfferStatusDLQ,
		QueueOrderPlacedDLQ,
	}
}

func DeadLetterQueue(queueName string) string {
	return queueName + dlqSuffix
}

// PublishJSON marshals v and publishes it to queueName.
func PublishJSON(ctx context.Context, b Broker, queueName string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", queueName, err)
	}

	return b.Publish(ctx, queueName, body)
}
