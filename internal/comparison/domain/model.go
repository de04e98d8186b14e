package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSessionNotFound  = errors.New("comparison session not found")
	ErrInvalidCriteria  = errors.New("invalid ranking criteria")
	ErrInvalidSelection = errors.New("invalid project selection")
)

const (
	// MinProjects and MaxProjects bound how many projects one comparison
	// session may hold.
	MinProjects = 2
	MaxProjects = 4
)

// Session is a short-lived selection of projects under comparison. Only the
// selection is stored; metric bundles are synthesized per request and never
// persisted.
type Session struct {
	ID         string    `json:"id"`
	ProjectIDs []int     `json:"project_ids"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidateSelection enforces the 2-4 distinct project rule.
func ValidateSelection(ids []int) error {
	if len(ids) < MinProjects || len(ids) > MaxProjects {
		return fmt.Errorf("%w: comparison requires between %d and %d projects, got %d",
			ErrInvalidSelection, MinProjects, MaxProjects, len(ids))
	}
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate project id %d", ErrInvalidSelection, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// FinancialMetrics is the financial slice of a comparison bundle. IRR is a
// fraction (0.12 = 12%); ROI a percentage. Unknown values are carried as
// NaN in memory and rendered as N/A, never fabricated silently.
type FinancialMetrics struct {
	NPV float64 `json:"npv"`
	IRR float64 `json:"irr"`
	ROI float64 `json:"roi"`
}

type GeospatialMetrics struct {
	LocationScore      float64 `json:"location_score"`
	AccessibilityScore float64 `json:"accessibility_score"`
}

type SustainabilityMetrics struct {
	Score           float64 `json:"score"`
	CarbonFootprint float64 `json:"carbon_footprint"`
}

// Metrics is one project's bundle inside a comparison session.
type Metrics struct {
	ProjectID   int    `json:"project_id"`
	ProjectName string `json:"project_name"`

	Financial      FinancialMetrics      `json:"financial"`
	Geospatial     GeospatialMetrics     `json:"geospatial"`
	Sustainability SustainabilityMetrics `json:"sustainability"`

	OverallScore float64 `json:"overall_score"`
}

// Criteria selects the ranking sort key.
type Criteria string

const (
	CriteriaOverall        Criteria = "overall"
	CriteriaNPV            Criteria = "npv"
	CriteriaIRR            Criteria = "irr"
	CriteriaSustainability Criteria = "sustainability"
)

func ParseCriteria(s string) (Criteria, error) {
	switch Criteria(s) {
	case CriteriaOverall, CriteriaNPV, CriteriaIRR, CriteriaSustainability:
		return Criteria(s), nil
	case "":
		return CriteriaOverall, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCriteria, s)
}

// Ranked is a metrics bundle annotated with its position in a ranking.
type Ranked struct {
	Metrics
	Rank  int    `json:"rank"`
	Medal string `json:"medal,omitempty"`
}
