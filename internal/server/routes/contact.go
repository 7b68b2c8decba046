package routes

import (
	"contactrelay/internal/api/handlers"
	"contactrelay/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	public := router.Group("/contact")
	{
		// Public endpoint, so it carries its own stricter rate limit on top
		// of the global one.
		public.POST("/submit",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1,
				Burst: 5,
			}),
			contact.Submit,
		)
	}
}
