package repo

import (
	"context"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfferStatusAuditRepository interface {
	Create(ctx context.Context, audit *domain.OfferStatusAudit) error
	GetByOfferID(ctx context.Context, offerID primitive.ObjectID, limit int) ([]domain.OfferStatusAudit, error)
}
