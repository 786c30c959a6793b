// server/internal/database/seeder.go
package database

import (
	"context"
	"log"
	"time"

	"buildmat-orders-api-server/config"
	"buildmat-orders-api-server/internal/auth"
	"buildmat-orders-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedAdmin creates the initial admin account if none exists for the
// configured email. Without at least one admin there is nobody to
// receive new-order notifications or change statuses.
func SeedAdmin(db *mongo.Database, cfg config.Config) error {
	userCollection := db.Collection("users")

	adminEmail := cfg.Seed.AdminEmail
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := cfg.Seed.AdminPassword
	if adminPassword == "" {
		adminPassword = "ChangeMe!2024"
	}

	count, err := userCollection.CountDocuments(context.Background(), bson.M{"email": adminEmail})
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin already exists. Seeding skipped.")
		return nil
	}

	log.Println("Admin not found. Seeding...")
	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:       adminEmail,
		Password:    hashedPassword,
		Role:        models.RoleAdmin,
		DisplayName: "Administrator",
		CreatedAt:   time.Now(),
	}

	_, err = userCollection.InsertOne(context.Background(), admin)
	if err != nil {
		return err
	}

	log.Println("Admin seeded successfully.")
	return nil
}

// SeedMaterials loads the default construction-materials catalog once.
func SeedMaterials(db *mongo.Database) error {
	collection := db.Collection("materials")

	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Materials catalog already exists. Seeding skipped.")
		return nil
	}

	log.Println("Materials catalog not found. Seeding...")

	catalog := []struct {
		sku, name, unit, category string
		price                     float64
	}{
		{"CEMENT-01", "Cement 50kg bag", "bag", "cement", 250},
		{"CEMENT-02", "Mortar 50kg bag", "bag", "cement", 220},
		{"LIME-01", "Hydrated lime 25kg", "bag", "cement", 80},
		{"REBAR-01", "Rebar 3/8\" 12m", "piece", "steel", 180},
		{"REBAR-02", "Rebar 1/2\" 12m", "piece", "steel", 320},
		{"REBAR-03", "Rebar 5/8\" 12m", "piece", "steel", 500},
		{"WIRE-01", "Wire rod 1/4\" roll", "roll", "steel", 1200},
		{"WIRE-02", "Annealed wire", "kg", "steel", 40},
		{"BRICK-01", "Red brick (thousand)", "thousand", "masonry", 3500},
		{"BLOCK-01", "Hollow block 12x20x40cm", "piece", "masonry", 14},
		{"BLOCK-02", "Solid block 10x20x40cm", "piece", "masonry", 12},
		{"SAND-01", "Sand", "m3", "aggregates", 400},
		{"GRAVEL-01", "Gravel", "m3", "aggregates", 450},
		{"TILE-01", "Tile adhesive 20kg", "bag", "finishes", 150},
		{"PLASTER-01", "Plaster 25kg", "bag", "finishes", 90},
	}

	docs := make([]interface{}, 0, len(catalog))
	for _, m := range catalog {
		docs = append(docs, models.Material{
			SKU:       m.sku,
			Name:      m.name,
			Unit:      m.unit,
			Category:  m.category,
			UnitPrice: m.price,
			Active:    true,
			CreatedAt: time.Now(),
		})
	}

	if _, err := collection.InsertMany(context.Background(), docs); err != nil {
		return err
	}

	log.Printf("Materials catalog seeded with %d entries.", len(docs))
	return nil
}
