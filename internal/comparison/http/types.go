package http

import (
	"math"

	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/numfmt"
)

type createSessionReq struct {
	ProjectIDs []int `json:"project_ids" binding:"required"`
}

type exportReq struct {
	Format string `json:"format"`
}

// metricsDTO is the wire form of a bundle: raw values only when finite
// (JSON cannot carry NaN), display strings always.
type metricsDTO struct {
	ProjectID   int    `json:"project_id"`
	ProjectName string `json:"project_name"`

	NPV                *float64 `json:"npv,omitempty"`
	IRR                *float64 `json:"irr,omitempty"`
	ROI                *float64 `json:"roi,omitempty"`
	LocationScore      *float64 `json:"location_score,omitempty"`
	AccessibilityScore *float64 `json:"accessibility_score,omitempty"`
	Sustainability     *float64 `json:"sustainability_score,omitempty"`
	CarbonFootprint    *float64 `json:"carbon_footprint,omitempty"`
	OverallScore       *float64 `json:"overall_score,omitempty"`

	Display metricsDisplay `json:"display"`
}

type metricsDisplay struct {
	NPV                string `json:"npv"`
	IRR                string `json:"irr"`
	ROI                string `json:"roi"`
	LocationScore      string `json:"location_score"`
	AccessibilityScore string `json:"accessibility_score"`
	Sustainability     string `json:"sustainability_score"`
	OverallScore       string `json:"overall_score"`
}

func toMetricsDTO(m domain.Metrics) metricsDTO {
	return metricsDTO{
		ProjectID:          m.ProjectID,
		ProjectName:        m.ProjectName,
		NPV:                finitePtr(m.Financial.NPV),
		IRR:                finitePtr(m.Financial.IRR),
		ROI:                finitePtr(m.Financial.ROI),
		LocationScore:      finitePtr(m.Geospatial.LocationScore),
		AccessibilityScore: finitePtr(m.Geospatial.AccessibilityScore),
		Sustainability:     finitePtr(m.Sustainability.Score),
		CarbonFootprint:    finitePtr(m.Sustainability.CarbonFootprint),
		OverallScore:       finitePtr(m.OverallScore),
		Display: metricsDisplay{
			NPV:                numfmt.Currency(m.Financial.NPV),
			IRR:                numfmt.Percent(m.Financial.IRR),
			ROI:                numfmt.Percent(m.Financial.ROI / 100),
			LocationScore:      numfmt.Score(m.Geospatial.LocationScore),
			AccessibilityScore: numfmt.Score(m.Geospatial.AccessibilityScore),
			Sustainability:     numfmt.Score(m.Sustainability.Score),
			OverallScore:       numfmt.Score(m.OverallScore),
		},
	}
}

type rankedDTO struct {
	metricsDTO
	Rank  int    `json:"rank"`
	Medal string `json:"medal,omitempty"`
}

func toRankedDTO(r domain.Ranked) rankedDTO {
	return rankedDTO{
		metricsDTO: toMetricsDTO(r.Metrics),
		Rank:       r.Rank,
		Medal:      r.Medal,
	}
}

// matrixDTO is the side-by-side table: one row per metric, one cell per
// project, already formatted for display.
type matrixDTO struct {
	Projects []string    `json:"projects"`
	Rows     []matrixRow `json:"rows"`
}

type matrixRow struct {
	Metric string   `json:"metric"`
	Cells  []string `json:"cells"`
}

func toMatrixDTO(metrics []domain.Metrics) matrixDTO {
	dto := matrixDTO{Projects: make([]string, len(metrics))}
	for i, m := range metrics {
		dto.Projects[i] = m.ProjectName
	}

	rows := []struct {
		name string
		cell func(domain.Metrics) string
	}{
		{"NPV", func(m domain.Metrics) string { return numfmt.Currency(m.Financial.NPV) }},
		{"IRR", func(m domain.Metrics) string { return numfmt.Percent(m.Financial.IRR) }},
		{"ROI", func(m domain.Metrics) string { return numfmt.Percent(m.Financial.ROI / 100) }},
		{"Location score", func(m domain.Metrics) string { return numfmt.Score(m.Geospatial.LocationScore) }},
		{"Accessibility score", func(m domain.Metrics) string { return numfmt.Score(m.Geospatial.AccessibilityScore) }},
		{"Sustainability score", func(m domain.Metrics) string { return numfmt.Score(m.Sustainability.Score) }},
		{"Carbon footprint (tCO2e)", func(m domain.Metrics) string { return numfmt.Score(m.Sustainability.CarbonFootprint) }},
		{"Overall score", func(m domain.Metrics) string { return numfmt.Score(m.OverallScore) }},
	}

	for _, row := range rows {
		cells := make([]string, len(metrics))
		for i, m := range metrics {
			cells[i] = row.cell(m)
		}
		dto.Rows = append(dto.Rows, matrixRow{Metric: row.name, Cells: cells})
	}
	return dto
}

func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
