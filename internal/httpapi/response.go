// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httpapi

import "github.com/gin-gonic/gin"

// respondError writes the uniform error body used by every route.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
