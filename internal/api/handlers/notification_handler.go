// server/internal/api/handlers/notification_handler.go
package handlers

import (
	"context"
	"net/http"

	"buildmat-orders-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationHandler struct {
	DB *mongo.Database
}

type MarkReadRequest struct {
	NotificationIDs []string `json:"notificationIDs" binding:"required"`
}

// GetNotifications lists the signed-in user's notifications
// newest-first.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userIDInterface, _ := c.Get("user_id")
	userID := userIDInterface.(string)

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := h.DB.Collection("notifications").Find(context.Background(), bson.M{"userID": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query notifications"})
		return
	}
	defer cursor.Close(context.Background())

	var notifications []models.Notification
	if err = cursor.All(context.Background(), &notifications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode notifications"})
		return
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead flags a batch of the caller's notifications as read.
// Reading is one-way; there is no unread operation.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userIDInterface, _ := c.Get("user_id")
	userID := userIDInterface.(string)

	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.NotificationIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "success", "updated": 0})
		return
	}

	oids := make([]primitive.ObjectID, 0, len(req.NotificationIDs))
	for _, id := range req.NotificationIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id: " + id})
			return
		}
		oids = append(oids, oid)
	}

	// Scoped to the caller so one user cannot mark another's
	// notifications.
	result, err := h.DB.Collection("notifications").UpdateMany(
		context.Background(),
		bson.M{"_id": bson.M{"$in": oids}, "userID": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "updated": result.ModifiedCount})
}
