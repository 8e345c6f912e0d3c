package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"go.uber.org/zap"
)

type OrderEventProcessor interface {
	ProcessOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

// OrderNotificationWorker tells cooks about new orders.
type OrderNotificationWorker struct {
	consumer
	notificationService OrderEventProcessor
}

func NewOrderNotificationWorker(notificationService OrderEventProcessor, broker queue.Broker, logger *zap.SugaredLogger) *OrderNotificationWorker {
	return &OrderNotificationWorker{
		consumer:            newConsumer("order-notification", queue.QueueOrderPlaced, broker, logger),
		notificationService: notificationService,
	}
}

func (w *OrderNotificationWorker) Start() error {
	return w.start(w.handleMessage)
}

func (w *OrderNotificationWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderPlacedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.EventID == "" {
		// notifications are deduplicated on the event id
		return fmt.Errorf("order placed event for %s has no event id", event.OrderID)
	}

	w.logger.Infow("processing order placed event", "order_id", event.OrderID, "cooks", len(event.Cooks))

	if err := w.notificationService.ProcessOrderPlaced(ctx, event); err != nil {
		w.logger.Errorw("failed to process order placed event", "order_id", event.OrderID, "error", err)
		return err
	}

	return nil
}
