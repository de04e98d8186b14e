package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/geoprofit/geoprofit-dashboard/config"
	analysishttp "github.com/geoprofit/geoprofit-dashboard/internal/analysis/http"
	analysisrepo "github.com/geoprofit/geoprofit-dashboard/internal/analysis/repository"
	analysisservice "github.com/geoprofit/geoprofit-dashboard/internal/analysis/service"
	comparisonhttp "github.com/geoprofit/geoprofit-dashboard/internal/comparison/http"
	comparisonrepo "github.com/geoprofit/geoprofit-dashboard/internal/comparison/repository"
	comparisonservice "github.com/geoprofit/geoprofit-dashboard/internal/comparison/service"
	dashboardhttp "github.com/geoprofit/geoprofit-dashboard/internal/dashboard/http"
	dashboardservice "github.com/geoprofit/geoprofit-dashboard/internal/dashboard/service"
	projectshttp "github.com/geoprofit/geoprofit-dashboard/internal/projects/http"
	projectsservice "github.com/geoprofit/geoprofit-dashboard/internal/projects/service"
	reporthttp "github.com/geoprofit/geoprofit-dashboard/internal/report/http"
	reportservice "github.com/geoprofit/geoprofit-dashboard/internal/report/service"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

type V1Deps struct {
	Cfg    *config.Config
	Engine *upstream.Client
	Redis  *redis.Client
	Logger *zap.Logger
}

// RegisterV1 wires every feature group under /api/v1.
func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	cache := analysisrepo.NewCache(dep.Redis, dep.Cfg.Features.AnalysisCacheTTL)
	analyses := analysisservice.NewAnalysisService(dep.Engine, cache, dep.Cfg.Features.DemoMode, dep.Logger)
	analysishttp.NewHandler(analyses).Register(api.Group("/analysis"))

	projects := projectsservice.NewProjectsService(dep.Engine, analyses, dep.Logger)
	projectshttp.NewHandler(projects).Register(api.Group("/projects"))

	sessions := comparisonrepo.NewSessionRepository(dep.Redis)
	comparisons := comparisonservice.NewComparisonService(
		dep.Engine, sessions, dep.Cfg.Features.CompareUseLive, dep.Cfg.Features.DemoMode, dep.Logger)
	comparisonhttp.NewHandler(comparisons).Register(api.Group("/comparison"))

	dashboards := dashboardservice.NewDashboardService(dep.Engine, analyses, dep.Logger)
	dashboardhttp.NewHandler(dashboards).Register(api.Group("/dashboard"))

	reports := reportservice.NewReportService(dashboards, dep.Logger)
	reporthttp.NewHandler(reports, dep.Engine).Register(api.Group("/reports"))
}
