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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DishOfferRepository struct {
	collection *mongo.Collection
}

func NewDishOfferRepository(db *mongo.Database) *DishOfferRepository {
	return &DishOfferRepository{
		collection: db.Collection(collectionDishOffers),
	}
}

func (r *DishOfferRepository) Create(ctx context.Context, offer *domain.DishOffer) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stampOffer(offer, time.Now())

	_, err := r.collection.InsertOne(ctx, offer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("dish offer %s: %w", offer.AdminDishID, repo.ErrDuplicate)
		}
		return fmt.Errorf("failed to create dish offer: %w", err)
	}

	return nil
}

func (r *DishOfferRepository) CreateMany(ctx context.Context, offers []*domain.DishOffer) error {
	if len(offers) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, 0, len(offers))
	for _, offer := range offers {
		stampOffer(offer, now)
		docs = append(docs, offer)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("dish offers: %w", repo.ErrDuplicate)
		}
		return fmt.Errorf("failed to create dish offers: %w", err)
	}

	return nil
}

func stampOffer(offer *domain.DishOffer, now time.Time) {
	if offer.ID.IsZero() {
		offer.ID = primitive.NewObjectID()
	}
	offer.CreatedAt = now
	offer.UpdatedAt = now
}

func (r *DishOfferRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DishOffer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var offer domain.DishOffer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&offer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("dish offer %s: %w", id.Hex(), repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dish offer: %w", err)
	}

	return &offer, nil
}

func (r *DishOfferRepository) ListByCook(ctx context.Context, cookID primitive.ObjectID) ([]domain.DishOffer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"cook_id": cookID,
		"status":  bson.M{"$ne": domain.OfferStatusDeleted},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list dish offers: %w", err)
	}
	defer cursor.Close(ctx)

	offers := []domain.DishOffer{}
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode dish offers: %w", err)
	}

	return offers, nil
}

func (r *DishOfferRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update dish offer status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("dish offer %s: %w", id.Hex(), repo.ErrNotFound)
	}

	return nil
}

func (r *DishOfferRepository) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":   id,
		"stock": bson.M{"$gte": quantity},
	}
	update := bson.M{
		"$inc": bson.M{"stock": -quantity},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("dish offer %s with %d in stock: %w", id.Hex(), quantity, repo.ErrNotFound)
	}

	return nil
}
