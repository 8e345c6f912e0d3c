package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"go.uber.org/zap"
)

type StatusEventProcessor interface {
	ProcessOfferStatusEvent(ctx context.Context, event domain.OfferStatusEvent) error
}

type OfferStatusWorker struct {
	consumer
	offerService StatusEventProcessor
}

func NewOfferStatusWorker(offerService StatusEventProcessor, broker queue.Broker, logger *zap.SugaredLogger) *OfferStatusWorker {
	return &OfferStatusWorker{
		consumer:     newConsumer("offer-status", queue.QueueOfferStatus, broker, logger),
		offerService: offerService,
	}
}

func (w *OfferStatusWorker) Start() error {
	return w.start(w.handleMessage)
}

func (w *OfferStatusWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OfferStatusEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing offer status event", "offer_id", event.OfferID, "event_type", event.EventType)

	if err := w.offerService.ProcessOfferStatusEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process offer status event", "offer_id", event.OfferID, "error", err)
		return err
	}

	return nil
}
