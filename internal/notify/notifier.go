// Package notify creates notification documents and pushes them to
// connected clients. Delivery is best-effort: failures are logged and
// swallowed so they never block or roll back the order mutation that
// triggered them.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"buildmat-orders-api-server/internal/models"
	"buildmat-orders-api-server/internal/socket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Notifier struct {
	DB  *mongo.Database
	Hub *socket.Hub
}

func NewNotifier(db *mongo.Database, hub *socket.Hub) *Notifier {
	return &Notifier{DB: db, Hub: hub}
}

// StatusChangeNotification builds the single notification owed to the
// order's owner when an operator moves the order to newStatus.
func StatusChangeNotification(order models.Order, newStatus models.OrderStatus) models.Notification {
	return models.Notification{
		UserID:    order.UserID,
		OrderID:   order.ID.Hex(),
		OrderName: order.Site,
		Message:   fmt.Sprintf("The status of your order for site %q changed to: %s.", order.Site, newStatus),
		Status:    newStatus,
		Read:      false,
		CreatedAt: time.Now(),
	}
}

// NewOrderNotification builds the notification one admin receives when
// a customer submits an order.
func NewOrderNotification(adminID string, order models.Order, requesterName string) models.Notification {
	return models.Notification{
		UserID:    adminID,
		OrderID:   order.ID.Hex(),
		OrderName: order.Site,
		Message:   fmt.Sprintf("New order from %q for site %q.", requesterName, order.Site),
		Status:    models.StatusPending,
		Read:      false,
		CreatedAt: time.Now(),
	}
}

// OrderStatusChanged notifies the order's owner that an operator moved
// the order to newStatus. Exactly one notification is written.
func (n *Notifier) OrderStatusChanged(ctx context.Context, order models.Order, newStatus models.OrderStatus) {
	n.deliver(ctx, StatusChangeNotification(order, newStatus))
}

// OrderCreated notifies every admin account about a newly submitted
// order, one notification per admin.
func (n *Notifier) OrderCreated(ctx context.Context, order models.Order, requesterName string) {
	cursor, err := n.DB.Collection("users").Find(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		log.Printf("Failed to look up admins for order notification: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var admins []models.User
	if err := cursor.All(ctx, &admins); err != nil {
		log.Printf("Failed to decode admins for order notification: %v", err)
		return
	}
	if len(admins) == 0 {
		log.Println("No admin users found to notify.")
		return
	}

	for _, admin := range admins {
		n.deliver(ctx, NewOrderNotification(admin.ID.Hex(), order, requesterName))
	}
}

// deliver stores one notification and pushes it over the websocket hub
// when the recipient is connected.
func (n *Notifier) deliver(ctx context.Context, notification models.Notification) {
	result, err := n.DB.Collection("notifications").InsertOne(ctx, notification)
	if err != nil {
		log.Printf("Failed to store notification for user %s: %v", notification.UserID, err)
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		notification.ID = oid
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		log.Printf("Failed to marshal notification payload: %v", err)
		return
	}
	if err := n.Hub.Send(notification.UserID, payload); err != nil {
		log.Printf("Failed to push notification to user %s: %v", notification.UserID, err)
	}
}
