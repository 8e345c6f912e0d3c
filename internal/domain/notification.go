package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CookID    primitive.ObjectID `bson:"cook_id" json:"cook_id"`
	OrderID   string             `bson:"order_id" json:"order_id"`
	EventID   string             `bson:"event_id" json:"event_id"`
	Title     string             `bson:"title" json:"title"`
	TitleAr   string             `bson:"title_ar" json:"title_ar"`
	Body      string             `bson:"body" json:"body"`
	BodyAr    string             `bson:"body_ar" json:"body_ar"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
