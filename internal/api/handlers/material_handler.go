// server/internal/api/handlers/material_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"buildmat-orders-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MaterialHandler struct {
	DB *mongo.Database
}

type CreateMaterialRequest struct {
	Name      string  `json:"name" binding:"required"`
	Unit      string  `json:"unit" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	UnitPrice float64 `json:"unitPrice" binding:"required,min=0"`
}

// GetAllMaterials lists active catalog entries, optionally filtered by
// category. Customers use this to build order lines.
func (h *MaterialHandler) GetAllMaterials(c *gin.Context) {
	filter := bson.M{"active": true}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := h.DB.Collection("materials").Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query materials"})
		return
	}
	defer cursor.Close(context.Background())

	var materials []models.Material
	if err = cursor.All(context.Background(), &materials); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode materials"})
		return
	}

	if materials == nil {
		materials = []models.Material{}
	}

	c.JSON(http.StatusOK, materials)
}

// CreateMaterial adds one catalog entry.
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	material, err := h.insertMaterial(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
		return
	}

	c.JSON(http.StatusCreated, material)
}

// CreateMaterials adds a batch of catalog entries.
func (h *MaterialHandler) CreateMaterials(c *gin.Context) {
	var reqs []CreateMaterialRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := make([]models.Material, 0, len(reqs))
	for _, req := range reqs {
		material, err := h.insertMaterial(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material", "name": req.Name})
			return
		}
		created = append(created, material)
	}

	c.JSON(http.StatusCreated, created)
}

// DeactivateMaterial retires a catalog entry without touching orders
// that already reference it.
func (h *MaterialHandler) DeactivateMaterial(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid material id"})
		return
	}

	result, err := h.DB.Collection("materials").UpdateOne(
		context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"active": false}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate material"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Material deactivated"})
}

func (h *MaterialHandler) insertMaterial(ctx context.Context, req CreateMaterialRequest) (models.Material, error) {
	material := models.Material{
		SKU:       GenerateSKU(req.Category),
		Name:      req.Name,
		Unit:      req.Unit,
		Category:  req.Category,
		UnitPrice: req.UnitPrice,
		Active:    true,
		CreatedAt: time.Now(),
	}

	result, err := h.DB.Collection("materials").InsertOne(ctx, material)
	if err != nil {
		return models.Material{}, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		material.ID = oid
	}
	return material, nil
}

// GenerateSKU builds a catalog SKU from the category, the date and a
// short random suffix.
func GenerateSKU(category string) string {
	prefix := strings.ToUpper(strings.TrimSpace(category))
	datePart := time.Now().Format("20060102")
	randomPart := strings.ToUpper(uuid.New().String()[:4])

	return fmt.Sprintf("%s-%s-%s", prefix, datePart, randomPart)
}
