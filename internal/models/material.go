package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material is a catalog entry customers pick line items from. The
// catalog price is a default; the price captured on an order line is
// authoritative for that order.
type Material struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SKU       string             `bson:"sku" json:"sku"`
	Name      string             `bson:"name" json:"name"`
	Unit      string             `bson:"unit" json:"unit"`
	Category  string             `bson:"category" json:"category"`
	UnitPrice float64            `bson:"unitPrice" json:"unitPrice"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
