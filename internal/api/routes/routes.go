// server/internal/api/routes/routes.go
package routes

import (
	"time"

	"buildmat-orders-api-server/config"
	"buildmat-orders-api-server/internal/api/handlers"
	"buildmat-orders-api-server/internal/api/middleware"
	"buildmat-orders-api-server/internal/models"
	"buildmat-orders-api-server/internal/notify"
	"buildmat-orders-api-server/internal/s3"
	"buildmat-orders-api-server/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter wires the handlers and their collaborators to routes.
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	jwtExpiration, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		jwtExpiration = 24 * time.Hour
	}

	notifier := notify.NewNotifier(db, wsHub)

	userHandler := &handlers.UserHandler{DB: db, JWTExpiration: jwtExpiration}
	orderHandler := &handlers.OrderHandler{DB: db, S3Uploader: s3Uploader, Notifier: notifier}
	adminHandler := &handlers.AdminHandler{DB: db, Notifier: notifier}
	notificationHandler := &handlers.NotificationHandler{DB: db}
	materialHandler := &handlers.MaterialHandler{DB: db}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub}

	apiV1 := router.Group("/api/v1")
	{
		// WebSocket endpoint; authenticates via query token.
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === PUBLIC ROUTES ===

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register/personal", userHandler.RegisterPersonal)
			auth.POST("/register/company", userHandler.RegisterCompany)
			auth.POST("/login", userHandler.Login)
		}

		// === PROTECTED ROUTES ===

		authenticated := apiV1.Group("/")
		authenticated.Use(middleware.Authenticate())
		{
			authenticated.GET("/users/me", userHandler.GetProfile)

			orders := authenticated.Group("/orders")
			{
				orders.POST("/", orderHandler.CreateOrder)
				orders.GET("/", orderHandler.GetMyOrders)
				orders.GET("/:id", orderHandler.GetOrder)
				orders.POST("/:id/documents", orderHandler.UploadCreditDocuments)
			}

			notifications := authenticated.Group("/notifications")
			{
				notifications.GET("/", notificationHandler.GetNotifications)
				notifications.POST("/read", notificationHandler.MarkRead)
			}

			// Catalog is read-only for customers.
			authenticated.GET("/materials", materialHandler.GetAllMaterials)
		}

		// Admin routes require the admin role.
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			adminOrders := admin.Group("/orders")
			{
				adminOrders.GET("/", adminHandler.GetAllOrders)
				adminOrders.GET("/urgency", adminHandler.GetUrgencyBoard)
				adminOrders.PATCH("/:id/status", adminHandler.UpdateOrderStatus)
				adminOrders.DELETE("/:id", adminHandler.DeleteOrder)
			}

			// Catalog management (admin only)
			materials := admin.Group("/materials")
			{
				materials.POST("/", materialHandler.CreateMaterial)
				materials.POST("/batch", materialHandler.CreateMaterials)
				materials.DELETE("/:id", materialHandler.DeactivateMaterial)
			}
		}
	}

	return router
}
