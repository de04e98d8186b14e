package service

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	analysisdomain "github.com/geoprofit/geoprofit-dashboard/internal/analysis/domain"
	analysisservice "github.com/geoprofit/geoprofit-dashboard/internal/analysis/service"
	projectsdomain "github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

// Dashboard bundles a project with whichever of its three analyses could
// be produced right now. Analyses that failed are listed by kind instead
// of blocking the whole view.
type Dashboard struct {
	Project        *projectsdomain.Project              `json:"project"`
	Financial      *analysisdomain.FinancialResult      `json:"financial,omitempty"`
	Geospatial     *analysisdomain.GeospatialResult     `json:"geospatial,omitempty"`
	Sustainability *analysisdomain.SustainabilityResult `json:"sustainability,omitempty"`
	CashFlow       *analysisdomain.CashFlowSummary      `json:"cash_flow,omitempty"`
	OverallScore   *float64                             `json:"overall_score,omitempty"`
	Failed         []string                             `json:"failed_analyses,omitempty"`
	GeneratedAt    time.Time                            `json:"generated_at"`
}

// DashboardService assembles the single-project dashboard view.
type DashboardService struct {
	engine   *upstream.Client
	analyses *analysisservice.AnalysisService
	logger   *zap.Logger
}

func NewDashboardService(engine *upstream.Client, analyses *analysisservice.AnalysisService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{engine: engine, analyses: analyses, logger: logger}
}

// Build fetches the project record, then runs the three analyses
// concurrently. A missing project is fatal; a failed analysis only lands
// in Failed. The overall score averages whichever sub-scores arrived.
func (s *DashboardService) Build(ctx context.Context, projectID int) (*Dashboard, error) {
	project, err := s.engine.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Project: project, GeneratedAt: time.Now().UTC()}

	var mu sync.Mutex
	fail := func(kind analysisdomain.Kind, err error) {
		s.logger.Warn("dashboard analysis failed",
			zap.Int("project_id", projectID),
			zap.String("kind", string(kind)),
			zap.Error(err))
		mu.Lock()
		d.Failed = append(d.Failed, string(kind))
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fin, err := s.analyses.Financial(gctx, projectID)
		if err != nil {
			fail(analysisdomain.KindFinancial, err)
			return nil
		}
		summary := analysisdomain.SummarizeCashFlows(fin.CashFlows)
		mu.Lock()
		d.Financial = fin
		d.CashFlow = &summary
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		geo, err := s.analyses.Geospatial(gctx, projectID)
		if err != nil {
			fail(analysisdomain.KindGeospatial, err)
			return nil
		}
		mu.Lock()
		d.Geospatial = geo
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		sus, err := s.analyses.Sustainability(gctx, projectID)
		if err != nil {
			fail(analysisdomain.KindSustainability, err)
			return nil
		}
		mu.Lock()
		d.Sustainability = sus
		mu.Unlock()
		return nil
	})
	// The goroutines report failures through fail(), never as errors.
	_ = g.Wait()

	sort.Strings(d.Failed)
	d.OverallScore = overallScore(d)
	return d, nil
}

// overallScore is the unweighted mean of the sub-scores that are present,
// nil when none of the three analyses produced one.
func overallScore(d *Dashboard) *float64 {
	var sum float64
	var n int

	if d.Financial != nil {
		if fin := analysisdomain.FinancialScore(d.Financial.NPV, d.Financial.ROIPercentage); !math.IsNaN(fin) {
			sum += fin
			n++
		}
	}
	if d.Geospatial != nil {
		sum += (d.Geospatial.LocationScore + d.Geospatial.AccessibilityScore) / 2
		n++
	}
	if d.Sustainability != nil {
		sum += d.Sustainability.OverallScore
		n++
	}

	if n == 0 {
		return nil
	}
	score := math.Round(sum/float64(n)*10) / 10
	return &score
}
