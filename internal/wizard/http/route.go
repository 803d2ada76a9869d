package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/wizard")

	// Every wizard step requires a signed-in user; the draft is keyed
	// by the authenticated identity.
	group.Use(authMiddleware)
	{
		group.GET("/draft", h.GetDraft)
		group.POST("/stay", h.SelectStay)
		group.POST("/guest", h.SubmitGuestInfo)
		group.POST("/payment", h.ConfirmPayment)
		group.GET("/confirmation/:reference", h.Confirmation)
	}
}
