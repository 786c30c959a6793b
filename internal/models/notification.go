package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a directed status-change or new-order event. Read is
// one-way: once marked read it is never unread. Notifications are never
// deleted in normal operation.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userID" json:"userID"`
	OrderID   string             `bson:"orderID" json:"orderID"`
	OrderName string             `bson:"orderName" json:"orderName"`
	Message   string             `bson:"message" json:"message"`
	Status    OrderStatus        `bson:"status" json:"status"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
