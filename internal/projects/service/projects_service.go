package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

// CacheInvalidator drops cached analysis results for a project after its
// record changed.
type CacheInvalidator interface {
	InvalidateProject(ctx context.Context, projectID int) error
}

// ProjectsService proxies project CRUD to the engine, validating input on
// the way in and invalidating cached analyses when a record changes.
type ProjectsService struct {
	engine      *upstream.Client
	invalidator CacheInvalidator
	logger      *zap.Logger
}

func NewProjectsService(engine *upstream.Client, invalidator CacheInvalidator, logger *zap.Logger) *ProjectsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectsService{engine: engine, invalidator: invalidator, logger: logger}
}

// List returns the engine's paginated project list.
func (s *ProjectsService) List(ctx context.Context) (*domain.ProjectList, error) {
	return s.engine.ListProjects(ctx)
}

// Get returns one project by id.
func (s *ProjectsService) Get(ctx context.Context, id int) (*domain.Project, error) {
	return s.engine.GetProject(ctx, id)
}

// Create validates and normalizes the input, then creates the project
// upstream.
func (s *ProjectsService) Create(ctx context.Context, in *domain.ProjectInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	in.Normalize()

	p, err := s.engine.CreateProject(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info("project created", zap.Int("project_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// Update replaces the project record and drops its cached analyses, which
// were computed from the old assumptions.
func (s *ProjectsService) Update(ctx context.Context, id int, in *domain.ProjectInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	in.Normalize()

	p, err := s.engine.UpdateProject(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if err := s.invalidator.InvalidateProject(ctx, id); err != nil {
		s.logger.Warn("failed to invalidate analysis cache", zap.Int("project_id", id), zap.Error(err))
	}
	s.logger.Info("project updated", zap.Int("project_id", id))
	return p, nil
}

// Delete removes the project upstream and drops its cached analyses.
func (s *ProjectsService) Delete(ctx context.Context, id int) error {
	if err := s.engine.DeleteProject(ctx, id); err != nil {
		return err
	}
	if err := s.invalidator.InvalidateProject(ctx, id); err != nil {
		s.logger.Warn("failed to invalidate analysis cache", zap.Int("project_id", id), zap.Error(err))
	}
	s.logger.Info("project deleted", zap.Int("project_id", id))
	return nil
}
