package repo

import (
	"context"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfferImportTaskRepository interface {
	Create(ctx context.Context, task *domain.OfferImportTask) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.OfferImportTask, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error
	Complete(ctx context.Context, id primitive.ObjectID, imported int, rowErrors []domain.ImportRowError) error
	IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error
}
