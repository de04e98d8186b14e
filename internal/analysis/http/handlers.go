package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geoprofit/geoprofit-dashboard/internal/analysis/service"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

// Handler exposes the analysis trigger endpoints.
type Handler struct {
	svc *service.AnalysisService
}

func NewHandler(svc *service.AnalysisService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) financial(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	res, err := h.svc.Financial(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

func (h *Handler) geospatial(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	res, err := h.svc.Geospatial(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

func (h *Handler) sustainability(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	res, err := h.svc.Sustainability(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": res})
}

func (h *Handler) cashFlowSummary(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	summary, err := h.svc.CashFlowSummary(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": summary})
}

func projectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"ok": false, "error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
}
