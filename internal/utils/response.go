package utils

import "github.com/gin-gonic/gin"

// Error writes a JSON error body of the form {"error": msg}.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"error": msg,
	})
}
