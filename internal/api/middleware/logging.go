package middleware

import (
	"time"

	"contactrelay/internal/logging"
	"contactrelay/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with timing and client details.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		clientIP := utils.GetRealIP(c)

		logger.Info("%s %s | status=%d | ip=%s | requestId=%s | %s",
			method,
			path,
			status,
			clientIP,
			c.GetString(ContextKeyRequestID),
			latency,
		)
	}
}
