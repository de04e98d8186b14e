package http

import "github.com/gin-gonic/gin"

// Register attaches comparison routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.createSession)
	rg.GET("/sessions/:id", h.getSession)
	rg.DELETE("/sessions/:id", h.deleteSession)
	rg.GET("/sessions/:id/ranking", h.ranking)
	rg.GET("/sessions/:id/radar", h.radar)
	rg.GET("/sessions/:id/matrix", h.matrix)
	rg.POST("/sessions/:id/export", h.export)
}
