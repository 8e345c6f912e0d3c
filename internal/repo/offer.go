package repo

import (
	"context"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DishOfferRepository interface {
	Create(ctx context.Context, offer *domain.DishOffer) error
	CreateMany(ctx context.Context, offers []*domain.DishOffer) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DishOffer, error)
	ListByCook(ctx context.Context, cookID primitive.ObjectID) ([]domain.DishOffer, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	// DecrementStock fails with ErrNotFound if fewer than quantity units are left.
	DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error
}
