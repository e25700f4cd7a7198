package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jwseo/maechuldash-backend/config"
	"github.com/jwseo/maechuldash-backend/internal/app/controller"
	"github.com/jwseo/maechuldash-backend/internal/middleware"
)

type Router struct {
	authController       *controller.AuthController
	dashboardController  *controller.DashboardController
	commentaryController *controller.CommentaryController
	exportController     *controller.ExportController
	wsController         *controller.WSController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	dashboardController *controller.DashboardController,
	commentaryController *controller.CommentaryController,
	exportController *controller.ExportController,
	wsController *controller.WSController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		dashboardController:  dashboardController,
		commentaryController: commentaryController,
		exportController:     exportController,
		wsController:         wsController,
		authMiddleware:       authMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "MAECHULDASH API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
		}

		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("/:period", r.dashboardController.GetDashboard)
			dashboard.GET("/:period/pl", r.dashboardController.GetPL)
			dashboard.GET("/:period/export", r.exportController.ExportReport)
			dashboard.POST("/:period/refresh",
				r.authMiddleware.RequireRole("admin"),
				r.dashboardController.Refresh,
			)
			dashboard.GET("/:period/commentary", r.commentaryController.GetCommentary)
			dashboard.PUT("/:period/commentary",
				r.authMiddleware.RequireRole("analyst", "admin"),
				r.commentaryController.UpdateCommentary,
			)
		}
	}

	// 갱신 알림 WebSocket (토큰은 쿼리 파라미터)
	router.GET("/ws", r.authMiddleware.Authenticate(), r.wsController.Connect)

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
