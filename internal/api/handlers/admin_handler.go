// server/internal/api/handlers/admin_handler.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"buildmat-orders-api-server/internal/models"
	"buildmat-orders-api-server/internal/notify"
	"buildmat-orders-api-server/internal/urgency"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminHandler struct {
	DB       *mongo.Database
	Notifier *notify.Notifier
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAllOrders lists every order in the system newest-first, with
// optional status and payment-type filters.
func (h *AdminHandler) GetAllOrders(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		if !models.OrderStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
			return
		}
		filter["status"] = status
	}
	if paymentType := c.Query("paymentType"); paymentType != "" {
		if !models.PaymentType(paymentType).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment type filter"})
			return
		}
		filter["paymentType"] = paymentType
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := h.DB.Collection("orders").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query orders"})
		return
	}
	defer cursor.Close(context.Background())

	var orders []models.Order
	if err = cursor.All(context.Background(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	now := time.Now()
	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order, now))
	}

	c.JSON(http.StatusOK, responses)
}

// GetUrgencyBoard groups open orders into urgency columns for triage.
// Delivered and cancelled orders never appear on the board.
func (h *AdminHandler) GetUrgencyBoard(c *gin.Context) {
	filter := bson.M{"status": bson.M{"$in": []models.OrderStatus{models.StatusPending, models.StatusInProgress}}}
	opts := options.Find().SetSort(bson.M{"deliveryWindowEnd": 1})
	cursor, err := h.DB.Collection("orders").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query orders"})
		return
	}
	defer cursor.Close(context.Background())

	var orders []models.Order
	if err = cursor.All(context.Background(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	now := time.Now()
	board := map[urgency.Tier][]OrderResponse{
		urgency.TierUrgent: {},
		urgency.TierSoon:   {},
		urgency.TierNormal: {},
	}
	for _, order := range orders {
		cls := urgency.Classify(order.DeliveryWindowEnd, now)
		resp := OrderResponse{Order: order, Urgency: &cls}
		board[cls.Tier] = append(board[cls.Tier], resp)
	}

	c.JSON(http.StatusOK, gin.H{
		"urgent": board[urgency.TierUrgent],
		"soon":   board[urgency.TierSoon],
		"normal": board[urgency.TierNormal],
	})
}

// UpdateOrderStatus moves an order to a new lifecycle status. Only
// transitions in the offered set are accepted; the order's owner gets
// exactly one notification on success.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newStatus := models.OrderStatus(req.Status)
	if !newStatus.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	collection := h.DB.Collection("orders")

	var order models.Order
	err = collection.FindOne(context.Background(), bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		}
		return
	}

	if !order.Status.CanTransitionTo(newStatus) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Transition not allowed from the current status",
			"currentStatus":  order.Status,
			"offeredTargets": order.Status.OfferedTargets(),
		})
		return
	}

	_, err = collection.UpdateOne(context.Background(), bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": newStatus}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	// Owner notification is best-effort and never rolls back the
	// status change.
	h.Notifier.OrderStatusChanged(context.Background(), order, newStatus)

	c.JSON(http.StatusOK, gin.H{"status": "success", "orderID": oid.Hex(), "newStatus": newStatus})
}

// DeleteOrder removes an order permanently. There is no soft delete.
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	result, err := h.DB.Collection("orders").DeleteOne(context.Background(), bson.M{"_id": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Order deleted successfully"})
}
