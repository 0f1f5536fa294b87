package response

import "github.com/gin-gonic/gin"

// Error writes the flat error body the site's frontend expects.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorWithDetails adds a details field for validation feedback.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details string) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

// OK writes {"success": true} for endpoints whose body carries no data.
func OK(c *gin.Context, statusCode int) {
	c.JSON(statusCode, gin.H{"success": true})
}
