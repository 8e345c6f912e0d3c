package service

import (
	"context"
	"fmt"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/queue"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OfferSheetParser reads offer rows from a spreadsheet.
type OfferSheetParser interface {
	ParseOffers(ctx context.Context, spreadsheetID string, cookID primitive.ObjectID) ([]*domain.DishOffer, []domain.ImportRowError, error)
}

type OfferImportService struct {
	taskRepo  repo.OfferImportTaskRepository
	offerRepo repo.DishOfferRepository
	cookRepo  repo.CookRepository
	parser    OfferSheetParser
	broker    queue.Broker
	tx        repo.Transactor
	logger    *zap.SugaredLogger
}

// NewOfferImportService accepts a nil parser; imports are then rejected with ErrImportDisabled.
func NewOfferImportService(
	taskRepo repo.OfferImportTaskRepository,
	offerRepo repo.DishOfferRepository,
	cookRepo repo.CookRepository,
	parser OfferSheetParser,
	broker queue.Broker,
	tx repo.Transactor,
	logger *zap.SugaredLogger,
) *OfferImportService {
	return &OfferImportService{
		taskRepo:  taskRepo,
		offerRepo: offerRepo,
		cookRepo:  cookRepo,
		parser:    parser,
		broker:    broker,
		tx:        tx,
		logger:    logger,
	}
}

func (s *OfferImportService) CreateImportTask(ctx context.Context, userID, spreadsheetID string) (*domain.OfferImportTask, error) {
	if s.parser == nil {
		return nil, ErrImportDisabled
	}

	cook, err := cookForUser(ctx, s.cookRepo, userID)
	if err != nil {
		return nil, err
	}

	task := &domain.OfferImportTask{
		Status:        domain.StatusQueued,
		SpreadsheetID: spreadsheetID,
		CookID:        cook.ID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.OfferImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
		CookID:        cook.ID.Hex(),
	}

	if err := queue.PublishJSON(ctx, s.broker, queue.QueueOfferImport, message); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.StatusFailed, err.Error())
		return nil, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID, "cook_id", cook.ID.Hex())

	return task, nil
}

func (s *OfferImportService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID, userID string) (*domain.OfferImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	if _, err := ownedCook(ctx, s.cookRepo, task.CookID, userID); err != nil {
		return nil, err
	}

	return task, nil
}

// ProcessImportTask inserts the valid rows and records the rest as row errors.
// A completed task is left alone so redelivered messages do not import twice.
func (s *OfferImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	if s.parser == nil {
		return ErrImportDisabled
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task.Status == domain.StatusCompleted {
		s.logger.Infow("import task already completed", "task_id", taskID.Hex())
		return nil
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing import task", "task_id", taskID.Hex())

	offers, rowErrors, err := s.parser.ParseOffers(ctx, task.SpreadsheetID, task.CookID)
	if err != nil {
		s.fail(ctx, taskID, err)
		return fmt.Errorf("failed to parse offers: %w", err)
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.offerRepo.CreateMany(ctx, offers); err != nil {
			return fmt.Errorf("failed to save offers: %w", err)
		}
		if err := s.taskRepo.Complete(ctx, taskID, len(offers), rowErrors); err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}
		return nil
	})
	if err != nil {
		s.fail(ctx, taskID, err)
		return err
	}

	s.logger.Infow("import task completed", "task_id", taskID.Hex(), "imported", len(offers), "row_errors", len(rowErrors))

	return nil
}

func (s *OfferImportService) fail(ctx context.Context, taskID primitive.ObjectID, cause error) {
	s.logger.Errorw("import task failed", "task_id", taskID.Hex(), "error", cause)

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, cause.Error()); err != nil {
		s.logger.Errorw("failed to mark import task failed", "task_id", taskID.Hex(), "error", err)
	}
	if err := s.taskRepo.IncrementRetryCount(ctx, taskID); err != nil {
		s.logger.Errorw("failed to increment retry count", "task_id", taskID.Hex(), "error", err)
	}
}
