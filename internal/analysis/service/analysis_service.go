package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/geoprofit/geoprofit-dashboard/internal/analysis/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/analysis/repository"
	projectsdomain "github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

// AnalysisService runs analyses through the engine, caches results, and,
// only when demo mode is on, substitutes deterministic synthetic data
// when the engine cannot be reached. With demo mode off an engine failure
// is an error; it is never silently converted into fake data.
type AnalysisService struct {
	engine   *upstream.Client
	cache    *repository.Cache
	demoMode bool
	logger   *zap.Logger
}

func NewAnalysisService(engine *upstream.Client, cache *repository.Cache, demoMode bool, logger *zap.Logger) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		engine:   engine,
		cache:    cache,
		demoMode: demoMode,
		logger:   logger,
	}
}

// Financial returns the financial analysis for a project.
func (s *AnalysisService) Financial(ctx context.Context, projectID int) (*domain.FinancialResult, error) {
	var cached domain.FinancialResult
	if err := s.cache.Get(ctx, domain.KindFinancial, projectID, &cached); err == nil {
		return &cached, nil
	}

	res, err := s.engine.RunFinancial(ctx, projectID)
	if err != nil {
		if !s.demoMode {
			return nil, err
		}
		s.logDemoFallback(domain.KindFinancial, projectID, err)
		res = DemoFinancial(s.projectForDemo(ctx, projectID))
	}

	if err := s.cache.Put(ctx, domain.KindFinancial, projectID, res); err != nil {
		s.logger.Warn("failed to cache financial result", zap.Int("project_id", projectID), zap.Error(err))
	}
	return res, nil
}

// Geospatial returns the geospatial analysis for a project.
func (s *AnalysisService) Geospatial(ctx context.Context, projectID int) (*domain.GeospatialResult, error) {
	var cached domain.GeospatialResult
	if err := s.cache.Get(ctx, domain.KindGeospatial, projectID, &cached); err == nil {
		return &cached, nil
	}

	res, err := s.engine.RunGeospatial(ctx, projectID)
	if err != nil {
		if !s.demoMode {
			return nil, err
		}
		s.logDemoFallback(domain.KindGeospatial, projectID, err)
		res = DemoGeospatial(s.projectForDemo(ctx, projectID))
	}

	if err := s.cache.Put(ctx, domain.KindGeospatial, projectID, res); err != nil {
		s.logger.Warn("failed to cache geospatial result", zap.Int("project_id", projectID), zap.Error(err))
	}
	return res, nil
}

// Sustainability returns the sustainability analysis for a project.
func (s *AnalysisService) Sustainability(ctx context.Context, projectID int) (*domain.SustainabilityResult, error) {
	var cached domain.SustainabilityResult
	if err := s.cache.Get(ctx, domain.KindSustainability, projectID, &cached); err == nil {
		return &cached, nil
	}

	res, err := s.engine.RunSustainability(ctx, projectID)
	if err != nil {
		if !s.demoMode {
			return nil, err
		}
		s.logDemoFallback(domain.KindSustainability, projectID, err)
		res = DemoSustainability(s.projectForDemo(ctx, projectID))
	}

	if err := s.cache.Put(ctx, domain.KindSustainability, projectID, res); err != nil {
		s.logger.Warn("failed to cache sustainability result", zap.Int("project_id", projectID), zap.Error(err))
	}
	return res, nil
}

// CashFlowSummary aggregates the financial analysis cash-flow series.
func (s *AnalysisService) CashFlowSummary(ctx context.Context, projectID int) (*domain.CashFlowSummary, error) {
	fin, err := s.Financial(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("cash flow summary: %w", err)
	}
	summary := domain.SummarizeCashFlows(fin.CashFlows)
	return &summary, nil
}

// InvalidateProject drops cached analyses after the project record changed.
func (s *AnalysisService) InvalidateProject(ctx context.Context, projectID int) error {
	return s.cache.Invalidate(ctx, projectID)
}

func (s *AnalysisService) logDemoFallback(kind domain.Kind, projectID int, err error) {
	s.logger.Warn("engine unavailable, serving demo data",
		zap.String("kind", string(kind)),
		zap.Int("project_id", projectID),
		zap.Error(err))
}

// projectForDemo fetches the real project so demo numbers reflect its
// assumptions; if the engine is fully down a canned stub keeps demo mode
// usable.
func (s *AnalysisService) projectForDemo(ctx context.Context, projectID int) *projectsdomain.Project {
	p, err := s.engine.GetProject(ctx, projectID)
	if err == nil {
		return p
	}

	return &projectsdomain.Project{
		ID:                     projectID,
		Name:                   fmt.Sprintf("Proyecto %d", projectID),
		ZoneType:               projectsdomain.ZoneMixed,
		TotalArea:              2500,
		TerrainValue:           450000,
		ConstructionCostPerM2:  650,
		InvestmentHorizon:      5,
		ConstructionTimeMonths: 12,
		SellingTimeMonths:      12,
		DiscountRate:           0.12,
		Status:                 projectsdomain.StatusDraft,
	}
}
