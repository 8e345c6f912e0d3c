package domain

import (
	"strings"
	"time"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/timezone"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cook struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Name        string             `bson:"name" json:"name"`
	StoreName   string             `bson:"store_name" json:"store_name"`
	CountryCode string             `bson:"country_code" json:"country_code"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Timezone is the IANA zone the cook's cutoff rules are evaluated in.
func (c *Cook) Timezone() string {
	return timezone.Resolve(c.CountryCode)
}
