package middleware

import (
	"net/http"

	"trainit-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in the handler chain into a logged 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.FromGinContext(c).WithField("panic", recovered).Error("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
