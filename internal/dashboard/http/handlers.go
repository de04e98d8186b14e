package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geoprofit/geoprofit-dashboard/internal/dashboard/service"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

// Handler serves the assembled single-project dashboard view.
type Handler struct {
	svc *service.DashboardService
}

func NewHandler(svc *service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// Register attaches dashboard routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/:id", h.dashboard)
}

func (h *Handler) dashboard(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return
	}

	d, err := h.svc.Build(c.Request.Context(), id)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, gin.H{"ok": false, "error": apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "dashboard": d})
}
