package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/rooms")

	// === Public Routes ===
	// Catalog and detail views are readable without signing in.
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.GET("/:id/photo", h.DownloadPhoto)

	// === Administration Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.POST("", h.Create)
		adminGroup.PATCH("/:id", h.Update)
		adminGroup.POST("/:id/photo", h.UploadPhoto)
	}
}
