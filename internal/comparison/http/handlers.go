package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/service"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

// Handler exposes comparison sessions and their three projections.
type Handler struct {
	svc *service.ComparisonService
}

func NewHandler(svc *service.ComparisonService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) createSession(c *gin.Context) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	session, err := h.svc.CreateSession(c.Request.Context(), req.ProjectIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "session": session})
}

func (h *Handler) getSession(c *gin.Context) {
	id := c.Param("id")

	session, err := h.svc.GetSession(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	metrics, err := h.svc.Metrics(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]metricsDTO, len(metrics))
	for i, m := range metrics {
		dtos[i] = toMetricsDTO(m)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": session, "metrics": dtos})
}

func (h *Handler) deleteSession(c *gin.Context) {
	if err := h.svc.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) ranking(c *gin.Context) {
	criteria, err := domain.ParseCriteria(c.Query("criteria"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	ranked, err := h.svc.Ranking(c.Request.Context(), c.Param("id"), criteria)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]rankedDTO, len(ranked))
	for i, r := range ranked {
		dtos[i] = toRankedDTO(r)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "criteria": criteria, "ranking": dtos})
}

func (h *Handler) radar(c *gin.Context) {
	polygons, err := h.svc.Radar(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "max_radius": service.DefaultRadarRadius, "polygons": polygons})
}

func (h *Handler) matrix(c *gin.Context) {
	metrics, err := h.svc.Metrics(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "matrix": toMatrixDTO(metrics)})
}

func (h *Handler) export(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.Format == "" {
		req.Format = "pdf"
	}

	exp, err := h.svc.Export(c.Request.Context(), c.Param("id"), req.Format)
	if err != nil {
		writeError(c, err)
		return
	}

	if exp.Filename != "" {
		c.Header("Content-Disposition", `attachment; filename="`+exp.Filename+`"`)
	}
	contentType := exp.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, exp.Data)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCriteria), errors.Is(err, domain.ErrInvalidSelection):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, gin.H{"ok": false, "error": apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
	}
}
