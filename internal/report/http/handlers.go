package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	comparisondomain "github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/report/service"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

// Handler serves report downloads and proxies the engine's binary
// comparison export.
type Handler struct {
	svc    *service.ReportService
	engine *upstream.Client
}

func NewHandler(svc *service.ReportService, engine *upstream.Client) *Handler {
	return &Handler{svc: svc, engine: engine}
}

// Register attaches report routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/:id/html", h.downloadHTML)
	rg.POST("/compare/export", h.compareExport)
}

func (h *Handler) downloadHTML(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return
	}

	report, err := h.svc.Generate(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", report.HTML)
}

type compareExportReq struct {
	ProjectIDs []int  `json:"project_ids" binding:"required"`
	Format     string `json:"format"`
}

func (h *Handler) compareExport(c *gin.Context) {
	var req compareExportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := comparisondomain.ValidateSelection(req.ProjectIDs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if req.Format == "" {
		req.Format = "pdf"
	}

	exp, err := h.engine.ExportComparison(c.Request.Context(), req.ProjectIDs, req.Format)
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
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"ok": false, "error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
}
