package http

import "github.com/gin-gonic/gin"

// Register attaches the brand kit routes.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/generate-brand-kit", h.GenerateBrandKit)
	r.GET("/my-kits/:userId", h.ListKits)
}
