package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}

	// === Administration Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(adminMiddleware)
	{
		adminGroup.PATCH("/:id/status", h.UpdateStatus)
	}
}
