package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OfferStatusAuditRepository struct {
	collection *mongo.Collection
}

func NewOfferStatusAuditRepository(db *mongo.Database) *OfferStatusAuditRepository {
	return &OfferStatusAuditRepository{
		collection: db.Collection(collectionStatusAudit),
	}
}

func (r *OfferStatusAuditRepository) Create(ctx context.Context, audit *domain.OfferStatusAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create offer status audit: %w", err)
	}

	return nil
}

func (r *OfferStatusAuditRepository) GetByOfferID(ctx context.Context, offerID primitive.ObjectID, limit int) ([]domain.OfferStatusAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"offer_id": offerID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer status audits: %w", err)
	}
	defer cursor.Close(ctx)

	audits := []domain.OfferStatusAudit{}
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode offer status audits: %w", err)
	}

	return audits, nil
}
