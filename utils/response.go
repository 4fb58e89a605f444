package utils

import "github.com/gin-gonic/gin"

// JSONSuccess and JSONError are the response envelope every endpoint
// uses: {"success": true, "data": ...} or {"success": false, "error": ...}.

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
