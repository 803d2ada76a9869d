package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers auth and profile routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Public Routes
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	// Authenticated Routes
	g.GET("/me", authMiddleware, h.Me)

	// Admin Routes
	profilesGroup := g.Group("/profiles")
	profilesGroup.Use(authMiddleware, adminMiddleware)
	{
		profilesGroup.GET("", h.List)
		profilesGroup.GET("/:id", h.Get)
	}
}
