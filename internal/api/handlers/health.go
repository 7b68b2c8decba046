package handlers

import (
	"contactrelay/internal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports process liveness. There is no backing store to probe.
func (h *HealthHandler) Check(c *gin.Context) {
	utils.RespondSuccess(c, "Health check OK")
}
