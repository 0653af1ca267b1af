package routes

import (
	"net/http"

	"nexivo_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole HTTP API under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Service.RegisterRoutes(api)
		appHandlers.Blog.RegisterRoutes(api)
		appHandlers.Vacancy.RegisterRoutes(api)
		appHandlers.Join.RegisterRoutes(api)
		appHandlers.Admin.RegisterRoutes(api)
		appHandlers.Contact.RegisterRoutes(api)
		appHandlers.File.RegisterRoutes(api)
	}
}
