package utils

import (
	"net/http"

	"contactrelay/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// RespondSuccess sends a 200 response with a success message
func RespondSuccess(c *gin.Context, message string) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.JSON(http.StatusOK, common.NewSuccessResponse(message))
}

// RespondError sends an error response with the given status and message
func RespondError(c *gin.Context, status int, message string) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.JSON(status, common.NewErrorResponse(message))
}
