package repo

import (
	"context"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CookRepository interface {
	Create(ctx context.Context, cook *domain.Cook) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Cook, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Cook, error)
}
