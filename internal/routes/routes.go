package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"lab-manager-server/internal/config"
	"lab-manager-server/internal/handlers"
	"lab-manager-server/internal/middleware"
	"lab-manager-server/internal/models"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	bilanHandler := handlers.NewBilanHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}

		// Shareable result link: the bilan id in the query parameter is the
		// whole access token for this read-only path.
		public.GET("/public/bilan", publicHandler.GetPublicBilan)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		// Staff management routes (admin-only)
		userRoutes := private.Group("/users")
		userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			userRoutes.POST("", userHandler.CreateUser)
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.GET("/:id", userHandler.GetUserByID)
			userRoutes.PUT("/:id", userHandler.UpdateUser)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
		}

		// Bilan routes
		bilanRoutes := private.Group("/bilans")
		{
			// All staff see the dashboard and the case list
			bilanRoutes.GET("", bilanHandler.GetBilans)
			bilanRoutes.GET("/stats", bilanHandler.GetStats)

			// Export is for admins and biologists
			bilanRoutes.GET("/export", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleBiologiste), bilanHandler.ExportBilans)

			bilanRoutes.GET("/:id", bilanHandler.GetBilanByID)
			bilanRoutes.GET("/:id/audit", bilanHandler.GetBilanAudit)

			// Any staff member can open a case file
			bilanRoutes.POST("", bilanHandler.CreateBilan)

			// Reception may update patient details; the handler blocks it
			// from touching the status
			bilanRoutes.PUT("/:id", bilanHandler.UpdateBilan)

			// Notification is for admins and biologists (results must be validated)
			bilanRoutes.POST("/:id/notify", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleBiologiste), bilanHandler.NotifyBilan)

			// Deletion is admin-only; the UI asks for confirmation first
			bilanRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), bilanHandler.DeleteBilan)
		}
	}

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
