package routes

import (
	"contactrelay/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, logger *logging.Logger) {
	// Health check endpoint, no versioned prefix.
	router.GET("/health", h.Health.Check)

	v1 := router.Group("/api/v1")

	SetupContactRoutes(v1, h.Contact)

	logger.Info("All routes have been set up successfully")
}
