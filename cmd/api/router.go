package main

import (
	"net/http"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupFeedRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// Public site: published articles only.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/articles", c.PublicHandler.List)
	v1.GET("/articles/:url", c.PublicHandler.Detail)
}

// Feed API: the read-only JSON mirror of the public content.
func setupFeedRoutes(v1 *gin.RouterGroup, c *container.Container) {
	feed := v1.Group("/feed")
	{
		feed.GET("/articles", c.FeedHandler.List)
		feed.GET("/articles/:id", c.FeedHandler.Get)
	}
}

// Admin: gated by the externally issued JWT plus the admin role.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.AdminMiddleware(),
	)
	{
		admin.GET("/articles", c.AdminHandler.List)
		admin.POST("/articles", c.AdminHandler.Create)
		admin.GET("/articles/:id", c.AdminHandler.Get)
		admin.PUT("/articles/:id", c.AdminHandler.Update)
		admin.PATCH("/articles/:id/visibility", c.AdminHandler.ChangeVisibility)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		})
	}
}
