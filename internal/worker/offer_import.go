package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ImportProcessor interface {
	ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error
}

type OfferImportWorker struct {
	consumer
	importService ImportProcessor
}

func NewOfferImportWorker(importService ImportProcessor, broker queue.Broker, logger *zap.SugaredLogger) *OfferImportWorker {
	return &OfferImportWorker{
		consumer:      newConsumer("offer-import", queue.QueueOfferImport, broker, logger),
		importService: importService,
	}
}

func (w *OfferImportWorker) Start() error {
	return w.start(w.handleMessage)
}

func (w *OfferImportWorker) handleMessage(ctx context.Context, message []byte) error {
	var msg domain.OfferImportMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal message", "error", err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	w.logger.Infow("processing offer import message", "task_id", msg.TaskID)

	taskID, err := primitive.ObjectIDFromHex(msg.TaskID)
	if err != nil {
		w.logger.Errorw("invalid task ID", "task_id", msg.TaskID, "error", err)
		return fmt.Errorf("invalid task ID: %w", err)
	}

	if err := w.importService.ProcessImportTask(ctx, taskID); err != nil {
		w.logger.Errorw("failed to process import task", "task_id", msg.TaskID, "error", err)
		return err
	}

	return nil
}
