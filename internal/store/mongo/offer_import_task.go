package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OfferImportTaskRepository struct {
	collection *mongo.Collection
}

func NewOfferImportTaskRepository(db *mongo.Database) *OfferImportTaskRepository {
	return &OfferImportTaskRepository{
		collection: db.Collection(collectionImportTasks),
	}
}

func (r *OfferImportTaskRepository) Create(ctx context.Context, task *domain.OfferImportTask) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to create import task: %w", err)
	}

	return nil
}

func (r *OfferImportTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.OfferImportTask, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var task domain.OfferImportTask
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("import task %s: %w", id.Hex(), repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return &task, nil
}

func (r *OfferImportTaskRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if errorMsg != "" {
		set["error_message"] = errorMsg
	}

	return r.update(ctx, id, bson.M{"$set": set}, "failed to update import task status")
}

func (r *OfferImportTaskRepository) Complete(ctx context.Context, id primitive.ObjectID, imported int, rowErrors []domain.ImportRowError) error {
	update := bson.M{
		"$set": bson.M{
			"status":         domain.StatusCompleted,
			"imported_count": imported,
			"row_errors":     rowErrors,
			"updated_at":     time.Now(),
		},
	}

	return r.update(ctx, id, update, "failed to complete import task")
}

func (r *OfferImportTaskRepository) IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$inc": bson.M{"retry_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	return r.update(ctx, id, update, "failed to increment retry count")
}

func (r *OfferImportTaskRepository) update(ctx context.Context, id primitive.ObjectID, update bson.M, failure string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("import task %s: %w", id.Hex(), repo.ErrNotFound)
	}

	return nil
}
