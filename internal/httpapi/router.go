// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all routes registered. When
// allowedOrigins is non-empty a CORS policy is installed for browser
// clients.
func NewRouter(h *Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(allowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
		r.Use(cors.New(cfg))
	}

	r.GET("/healthcheck", h.HealthCheck)
	r.GET("/pain-points", h.ListPainPoints)
	r.POST("/pain-points", h.UpdatePainPoint)
	r.GET("/categories", h.ListCategories)
	r.POST("/scrape", h.Scrape)

	return r
}
