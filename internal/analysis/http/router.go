package http

import "github.com/gin-gonic/gin"

// Register attaches analysis routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/:id/financial", h.financial)
	rg.POST("/:id/geospatial", h.geospatial)
	rg.POST("/:id/sustainability", h.sustainability)
	rg.GET("/:id/financial/cashflow-summary", h.cashFlowSummary)
}
