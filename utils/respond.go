// utils/respond.go
package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondWithError logs the failure and writes the standard error envelope.
func RespondWithError(c *gin.Context, status int, message string) {
	log.Printf("[ERROR] %s %s | %d: %s", c.Request.Method, c.Request.URL.Path, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
