// Package api exposes the compression service over HTTP. The surrounding UI
// is a pure consumer: it uploads a file's bytes plus options and receives
// either the compressed document or an error message.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/EdwardCranko/PDF-Squeeze/internal/container"
)

const maxUploadSize = 200 << 20 // 200 MB

// SetupRouter builds the gin engine with all API routes registered.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = 32 << 20

	api := router.Group("/api")
	{
		api.GET("/health", HandleHealth)
		api.POST("/compress", func(ctx *gin.Context) {
			HandleCompress(ctx, c)
		})
		api.GET("/preferences", func(ctx *gin.Context) {
			HandleGetPreferences(ctx, c)
		})
		api.PUT("/preferences", func(ctx *gin.Context) {
			HandleUpdatePreferences(ctx, c)
		})
	}

	return router
}
