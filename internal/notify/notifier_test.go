package notify_test

import (
	"testing"

	"buildmat-orders-api-server/internal/models"
	"buildmat-orders-api-server/internal/notify"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStatusChangeNotification(t *testing.T) {
	order := models.Order{
		ID:     primitive.NewObjectID(),
		UserID: "user-1",
		Site:   "Torre Norte",
		Status: models.StatusPending,
	}

	n := notify.StatusChangeNotification(order, models.StatusInProgress)

	assert.Equal(t, "user-1", n.UserID)
	assert.Equal(t, order.ID.Hex(), n.OrderID)
	assert.Equal(t, "Torre Norte", n.OrderName)
	assert.Equal(t, models.StatusInProgress, n.Status)
	assert.False(t, n.Read)
	assert.Contains(t, n.Message, "Torre Norte")
	assert.Contains(t, n.Message, string(models.StatusInProgress))
	assert.False(t, n.CreatedAt.IsZero())
}

func TestNewOrderNotification(t *testing.T) {
	order := models.Order{
		ID:     primitive.NewObjectID(),
		UserID: "user-1",
		Site:   "Torre Norte",
	}

	n := notify.NewOrderNotification("admin-1", order, "Maria Gonzalez")

	// Addressed to the admin, not the submitting user.
	assert.Equal(t, "admin-1", n.UserID)
	assert.Equal(t, order.ID.Hex(), n.OrderID)
	assert.Equal(t, models.StatusPending, n.Status)
	assert.False(t, n.Read)
	assert.Contains(t, n.Message, "Maria Gonzalez")
	assert.Contains(t, n.Message, "Torre Norte")
}
