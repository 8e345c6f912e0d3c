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

type CookRepository struct {
	collection *mongo.Collection
}

func NewCookRepository(db *mongo.Database) *CookRepository {
	return &CookRepository{
		collection: db.Collection(collectionCooks),
	}
}

func (r *CookRepository) Create(ctx context.Context, cook *domain.Cook) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if cook.ID.IsZero() {
		cook.ID = primitive.NewObjectID()
	}
	cook.CountryCode = domain.NormalizeCountryCode(cook.CountryCode)
	cook.CreatedAt = time.Now()
	cook.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, cook)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("cook for user %s: %w", cook.UserID, repo.ErrDuplicate)
		}
		return fmt.Errorf("failed to create cook: %w", err)
	}

	return nil
}

func (r *CookRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Cook, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CookRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cook, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *CookRepository) findOne(ctx context.Context, filter bson.M) (*domain.Cook, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cook domain.Cook
	err := r.collection.FindOne(ctx, filter).Decode(&cook)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("cook: %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cook: %w", err)
	}

	return &cook, nil
}
