// server/internal/api/handlers/order_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"buildmat-orders-api-server/internal/models"
	"buildmat-orders-api-server/internal/notify"
	"buildmat-orders-api-server/internal/s3"
	"buildmat-orders-api-server/internal/urgency"
	"buildmat-orders-api-server/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderHandler struct {
	DB         *mongo.Database
	S3Uploader *s3.Uploader
	Notifier   *notify.Notifier
}

// --- Structs for request bodies ---

type MaterialItemRequest struct {
	MaterialID  string  `json:"materialID"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CreateOrderRequest carries no binding tags; field rules live in the
// validation package so the error shape is uniform.
type CreateOrderRequest struct {
	Requester           string                `json:"requester"`
	Site                string                `json:"site"`
	Street              string                `json:"street"`
	Number              string                `json:"number"`
	Neighborhood        string                `json:"neighborhood"`
	PostalCode          string                `json:"postalCode"`
	City                string                `json:"city"`
	State               string                `json:"state"`
	PaymentType         string                `json:"paymentType"`
	CreditFrequency     string                `json:"creditFrequency"`
	PaymentMethod       string                `json:"paymentMethod"`
	Total               float64               `json:"total"`
	Materials           []MaterialItemRequest `json:"materials"`
	DeliveryWindowStart time.Time             `json:"deliveryWindowStart"`
	DeliveryWindowEnd   time.Time             `json:"deliveryWindowEnd"`
}

// OrderResponse pairs an order with its urgency classification. The
// classification is derived on read and never persisted; terminal
// orders carry none.
type OrderResponse struct {
	models.Order
	Urgency *urgency.Classification `json:"urgency,omitempty"`
}

func toOrderResponse(order models.Order, now time.Time) OrderResponse {
	resp := OrderResponse{Order: order}
	if !order.Status.Terminal() {
		cls := urgency.Classify(order.DeliveryWindowEnd, now)
		resp.Urgency = &cls
	}
	return resp
}

// CreateOrder submits a new material order for the signed-in user. The
// order starts in Pending and every admin account gets a notification.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userIDInterface, _ := c.Get("user_id")
	userID := userIDInterface.(string)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	materials := make([]models.MaterialItem, 0, len(req.Materials))
	for _, item := range req.Materials {
		materials = append(materials, models.MaterialItem{
			MaterialID:  item.MaterialID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	fieldErrs := validation.ValidateOrder(validation.OrderInput{
		Requester:           req.Requester,
		Site:                req.Site,
		Street:              req.Street,
		Number:              req.Number,
		Neighborhood:        req.Neighborhood,
		PostalCode:          req.PostalCode,
		City:                req.City,
		State:               req.State,
		PaymentType:         models.PaymentType(req.PaymentType),
		CreditFrequency:     models.CreditFrequency(req.CreditFrequency),
		Total:               req.Total,
		Materials:           materials,
		DeliveryWindowStart: req.DeliveryWindowStart,
		DeliveryWindowEnd:   req.DeliveryWindowEnd,
	})
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrs})
		return
	}

	newOrder := models.Order{
		UserID:              userID,
		Requester:           req.Requester,
		Site:                req.Site,
		Street:              req.Street,
		Number:              req.Number,
		Neighborhood:        req.Neighborhood,
		PostalCode:          req.PostalCode,
		City:                req.City,
		State:               req.State,
		PaymentType:         models.PaymentType(req.PaymentType),
		CreditFrequency:     models.CreditFrequency(req.CreditFrequency),
		PaymentMethod:       req.PaymentMethod,
		Status:              models.StatusPending,
		Total:               req.Total,
		Materials:           materials,
		DeliveryWindowStart: req.DeliveryWindowStart,
		DeliveryWindowEnd:   req.DeliveryWindowEnd,
		CreatedAt:           time.Now(),
	}

	result, err := h.DB.Collection("orders").InsertOne(context.Background(), newOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		newOrder.ID = oid
	}

	// Best-effort admin fan-out; a notification failure never fails
	// the order creation.
	h.Notifier.OrderCreated(context.Background(), newOrder, req.Requester)

	c.JSON(http.StatusCreated, toOrderResponse(newOrder, time.Now()))
}

// GetMyOrders lists the signed-in user's orders newest-first, with
// optional status and payment-type filters.
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userIDInterface, _ := c.Get("user_id")
	userID := userIDInterface.(string)

	filter := bson.M{"userID": userID}
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

	h.listOrders(c, filter)
}

// GetOrder returns one order. Owners see their own orders; admins see
// any order.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userIDInterface, _ := c.Get("user_id")
	userID := userIDInterface.(string)
	roleInterface, _ := c.Get("user_role")
	role := roleInterface.(string)

	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	filter := bson.M{"_id": oid}
	if role != models.RoleAdmin {
		filter["userID"] = userID
	}

	var order models.Order
	err = h.DB.Collection("orders").FindOne(context.Background(), filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order, time.Now()))
}

const maxDocumentSize = 5 << 20 // 5MB

var acceptedDocumentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// UploadCreditDocuments attaches the credit-vetting files (ID document
// and proof of address) to an order owned by the caller. Files land in
// S3; only their URLs are stored on the order.
func (h *OrderHandler) UploadCreditDocuments(c *gin.Context) {
	userIDInterface, _ := c.Get("user_id")
	userID := userIDInterface.(string)

	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var order models.Order
	err = h.DB.Collection("orders").FindOne(context.Background(), bson.M{"_id": oid, "userID": userID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		}
		return
	}

	if order.PaymentType != models.PaymentCredit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Documents are only required for credit orders"})
		return
	}

	update := bson.M{}
	if url, err := h.uploadDocument(c, "idDocument", order.ID.Hex()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if url != "" {
		update["idDocumentURL"] = url
	}
	if url, err := h.uploadDocument(c, "proofOfAddress", order.ID.Hex()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if url != "" {
		update["proofOfAddressURL"] = url
	}

	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No document files provided"})
		return
	}

	_, err = h.DB.Collection("orders").UpdateOne(context.Background(), bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach documents to order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "attached": update})
}

// uploadDocument reads one optional multipart file field and uploads
// it to S3. An absent field returns an empty URL without error.
func (h *OrderHandler) uploadDocument(c *gin.Context, field, orderID string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	if fileHeader.Size > maxDocumentSize {
		return "", fmt.Errorf("%s exceeds the 5MB limit", field)
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !acceptedDocumentTypes[contentType] {
		return "", fmt.Errorf("%s has an unsupported content type", field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer file.Close()

	objectKey := fmt.Sprintf("orders/%s/%s-%s", orderID, field, uuid.New().String()[:8])
	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", field, err)
	}
	return url, nil
}

// listOrders runs a filtered find sorted newest-first and writes the
// enriched response.
func (h *OrderHandler) listOrders(c *gin.Context, filter bson.M) {
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
