// server/cmd/api/main.go
package main

import (
	"context"
	"log"
	"time"

	"buildmat-orders-api-server/config"
	"buildmat-orders-api-server/internal/api/routes"
	"buildmat-orders-api-server/internal/auth"
	"buildmat-orders-api-server/internal/database"
	"buildmat-orders-api-server/internal/s3"
	"buildmat-orders-api-server/internal/socket"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 1. Load configuration (.env overlays config.yaml)
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT secret is not configured")
	}
	auth.JwtSecret = []byte(cfg.JWT.Secret)

	// 2. Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.Mongo.DBName)

	// 3. Seed the initial admin account
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	if err := database.SeedMaterials(db); err != nil {
		log.Fatalf("Failed to seed materials catalog: %v", err)
	}

	// 4. S3 uploader for credit-vetting documents
	s3Uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("Failed to create S3 uploader: %v", err)
	}

	// 5. WebSocket hub for live notification pushes
	wsHub := socket.NewHub()

	// 6. Wire everything into the router
	router := routes.SetupRouter(cfg, db, s3Uploader, wsHub)

	// 7. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
