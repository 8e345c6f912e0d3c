package worker

import (
	"context"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"go.uber.org/zap"
)

// consumer is the subscription lifecycle shared by every worker.
type consumer struct {
	name      string
	queueName string
	broker    queue.Broker
	logger    *zap.SugaredLogger
	ctx       context.Context
	cancel    context.CancelFunc
}

func newConsumer(name, queueName string, broker queue.Broker, logger *zap.SugaredLogger) consumer {
	ctx, cancel := context.WithCancel(context.Background())

	return consumer{
		name:      name,
		queueName: queueName,
		broker:    broker,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (c *consumer) start(handler queue.MessageHandler) error {
	c.logger.Infow("starting worker", "worker", c.name, "queue", c.queueName)

	return c.broker.Subscribe(c.ctx, c.queueName, handler)
}

func (c *consumer) Stop() {
	c.logger.Infow("stopping worker", "worker", c.name)
	c.cancel()
}
