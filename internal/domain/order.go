package domain

import (
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending = "pending"

	TimingSeparate = "separate"
	TimingCombined = "combined"
)

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber string             `bson:"order_number" json:"order_number"`
	CustomerID  string             `bson:"customer_id" json:"customer_id"`
	SubOrders   []SubOrder         `bson:"sub_orders" json:"sub_orders"`
	TotalAmount float64            `bson:"total_amount" json:"total_amount"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type SubOrder struct {
	CookID           primitive.ObjectID `bson:"cook_id" json:"cook_id"`
	TimingPreference string             `bson:"timing_preference" json:"timing_preference"`
	Items            []OrderItem        `bson:"items" json:"items"`
	Subtotal         float64            `bson:"subtotal" json:"subtotal"`
	CombinedReadyAt  string             `bson:"combined_ready_at,omitempty" json:"combined_ready_at,omitempty"`
}

type OrderItem struct {
	OfferID   primitive.ObjectID `bson:"offer_id" json:"offer_id"`
	Name      string             `bson:"name" json:"name"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	UnitPrice float64            `bson:"unit_price" json:"unit_price"`
	Ready     ReadyTime          `bson:"ready" json:"ready"`
}

// ReadyTime is the authoritative ready time stamped when the order was created.
// Timestamps are RFC 3339 strings in UTC.
type ReadyTime struct {
	ReadyAt         string               `bson:"ready_at" json:"ready_at"`
	ReadyAtMin      string               `bson:"ready_at_min,omitempty" json:"ready_at_min,omitempty"`
	PrepTimeMinutes int                  `bson:"prep_time_minutes" json:"prep_time_minutes"`
	DisplayText     string               `bson:"display_text" json:"display_text"`
	DisplayTextAr   string               `bson:"display_text_ar" json:"display_text_ar"`
	Timezone        string               `bson:"timezone" json:"timezone"`
	OptionType      prepready.OptionType `bson:"option_type" json:"option_type"`
}

func FormatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func NewReadyTime(res prepready.Result) ReadyTime {
	rt := ReadyTime{
		ReadyAt:         FormatInstant(res.ReadyAt),
		PrepTimeMinutes: res.PrepTimeMinutes,
		DisplayText:     prepready.FormatResult(res, prepready.English),
		DisplayTextAr:   prepready.FormatResult(res, prepready.Arabic),
		Timezone:        res.Timezone,
		OptionType:      res.OptionType,
	}
	if res.ReadyAtMin != nil {
		rt.ReadyAtMin = FormatInstant(*res.ReadyAtMin)
	}
	return rt
}
