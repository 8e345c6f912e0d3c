package domain

import (
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OfferStatusAvailable    = "available"
	OfferStatusNotAvailable = "not_available"
	OfferStatusDeleted      = "deleted"
)

type DishOffer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CookID          primitive.ObjectID `bson:"cook_id" json:"cook_id"`
	AdminDishID     string             `bson:"admin_dish_id" json:"admin_dish_id"`
	Name            string             `bson:"name" json:"name"`
	Price           float64            `bson:"price" json:"price"`
	Stock           int                `bson:"stock" json:"stock"`
	PortionSize     string             `bson:"portion_size" json:"portion_size"`
	PrepReadyConfig prepready.Config   `bson:"prep_ready_config" json:"prep_ready_config"`
	Fulfillment     Fulfillment        `bson:"fulfillment" json:"fulfillment"`
	DeliveryFee     float64            `bson:"delivery_fee" json:"delivery_fee"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

type Fulfillment struct {
	Pickup   bool `bson:"pickup" json:"pickup"`
	Delivery bool `bson:"delivery" json:"delivery"`
}

func (f Fulfillment) Any() bool {
	return f.Pickup || f.Delivery
}

func (o *DishOffer) Orderable(quantity int) bool {
	return o.Status == OfferStatusAvailable && o.Stock >= quantity
}

var portionSizes = map[string]bool{
	"single": true,
	"small":  true,
	"medium": true,
	"large":  true,
	"family": true,
}

func ValidPortionSize(size string) bool {
	return portionSizes[size]
}
