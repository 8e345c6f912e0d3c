package repo

import (
	"context"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationRepository interface {
	// CreateMany skips notifications whose (event_id, cook_id) pair already exists.
	CreateMany(ctx context.Context, notifications []*domain.Notification) error
	ListByCook(ctx context.Context, cookID primitive.ObjectID, limit int) ([]domain.Notification, error)
}
