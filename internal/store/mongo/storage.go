package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collectionCooks        = "cooks"
	collectionDishOffers   = "dish_offers"
	collectionOrders       = "orders"
	collectionImportTasks  = "offer_import_tasks"
	collectionStatusAudit  = "offer_status_audit"
	collectionNotification = "notifications"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Storage{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

// WithTransaction runs fn inside a session transaction. The driver retries fn on
// transient transaction errors, so fn must be safe to re-run.
func (s *Storage) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collectionCooks: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "country_code", Value: 1}},
			},
		},
		collectionDishOffers: {
			{
				Keys:    bson.D{{Key: "cook_id", Value: 1}, {Key: "admin_dish_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "cook_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			},
		},
		collectionOrders: {
			{
				Keys:    bson.D{{Key: "order_number", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}},
			},
			{
				Keys: bson.D{{Key: "sub_orders.cook_id", Value: 1}},
			},
		},
		collectionImportTasks: {
			{
				Keys: bson.D{{Key: "status", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "created_at", Value: 1}},
			},
		},
		collectionStatusAudit: {
			{
				Keys: bson.D{{Key: "offer_id", Value: 1}},
			},
			{
				Keys: bson.D{{Key: "timestamp", Value: 1}},
			},
		},
		collectionNotification: {
			{
				Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "cook_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "cook_id", Value: 1}, {Key: "created_at", Value: -1}},
			},
		},
	}

	for collection, models := range indexes {
		if _, err := s.database.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	return nil
}
