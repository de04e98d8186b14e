package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/repository"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

// DefaultRadarRadius is the vertex radius handed to chart rendering when
// the caller does not ask for another size.
const DefaultRadarRadius = 120.0

// ComparisonService owns comparison sessions and the three projections
// (ranking, radar, matrix) over the same metric bundles.
//
// useLive selects where bundles come from: the engine's compare endpoint,
// or local synthesis from project fields (with demo fill when demoMode is
// on). An engine failure in live mode surfaces as an error; it does not
// quietly fall back to synthesis.
type ComparisonService struct {
	engine   *upstream.Client
	sessions *repository.SessionRepository
	useLive  bool
	demoMode bool
	logger   *zap.Logger
}

func NewComparisonService(engine *upstream.Client, sessions *repository.SessionRepository, useLive, demoMode bool, logger *zap.Logger) *ComparisonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComparisonService{
		engine:   engine,
		sessions: sessions,
		useLive:  useLive,
		demoMode: demoMode,
		logger:   logger,
	}
}

// CreateSession validates the selection, confirms every project exists
// upstream, and stores the session.
func (s *ComparisonService) CreateSession(ctx context.Context, projectIDs []int) (*domain.Session, error) {
	if err := domain.ValidateSelection(projectIDs); err != nil {
		return nil, err
	}

	for _, id := range projectIDs {
		if _, err := s.engine.GetProject(ctx, id); err != nil {
			return nil, fmt.Errorf("project %d: %w", id, err)
		}
	}

	return s.sessions.Create(ctx, projectIDs)
}

// GetSession loads a stored session.
func (s *ComparisonService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.Get(ctx, id)
}

// DeleteSession removes a stored session.
func (s *ComparisonService) DeleteSession(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// Metrics computes the session's metric bundles, in selection order.
func (s *ComparisonService) Metrics(ctx context.Context, sessionID string) ([]domain.Metrics, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if s.useLive {
		metrics, err := s.engine.CompareProjects(ctx, session.ProjectIDs)
		if err != nil {
			return nil, fmt.Errorf("live comparison: %w", err)
		}
		return metrics, nil
	}

	metrics := make([]domain.Metrics, 0, len(session.ProjectIDs))
	for _, id := range session.ProjectIDs {
		p, err := s.engine.GetProject(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", id, err)
		}
		metrics = append(metrics, Synthesize(p, s.demoMode))
	}
	return metrics, nil
}

// Ranking returns the session's bundles ordered by the given criteria.
func (s *ComparisonService) Ranking(ctx context.Context, sessionID string, criteria domain.Criteria) ([]domain.Ranked, error) {
	metrics, err := s.Metrics(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Rank(metrics, criteria), nil
}

// Radar returns one hexagon overlay per project in the session.
func (s *ComparisonService) Radar(ctx context.Context, sessionID string) ([]RadarPolygon, error) {
	metrics, err := s.Metrics(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	polygons := make([]RadarPolygon, len(metrics))
	for i, m := range metrics {
		polygons[i] = RadarProjection(m, DefaultRadarRadius)
	}
	return polygons, nil
}

// Export proxies the engine's binary comparison export for the session.
func (s *ComparisonService) Export(ctx context.Context, sessionID, format string) (*upstream.Export, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.engine.ExportComparison(ctx, session.ProjectIDs, format)
}
