package service

import (
	"math"
	"math/rand"

	analysisdomain "github.com/geoprofit/geoprofit-dashboard/internal/analysis/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
	projectsdomain "github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
)

// Synthesize builds one project's comparison bundle from the fields the
// project record already carries. Fields the record lacks are filled with
// deterministic demo values (seeded by project id) when demoFill is on;
// otherwise they stay NaN and rank last / render as N/A.
func Synthesize(p *projectsdomain.Project, demoFill bool) domain.Metrics {
	rng := rand.New(rand.NewSource(int64(p.ID)))

	m := domain.Metrics{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		Financial: domain.FinancialMetrics{
			NPV: math.NaN(),
			IRR: math.NaN(),
			ROI: math.NaN(),
		},
		Geospatial: domain.GeospatialMetrics{
			LocationScore:      math.NaN(),
			AccessibilityScore: math.NaN(),
		},
		Sustainability: domain.SustainabilityMetrics{
			Score:           math.NaN(),
			CarbonFootprint: math.NaN(),
		},
	}

	if p.NPV != nil {
		m.Financial.NPV = *p.NPV
	}
	if p.IRR != nil {
		m.Financial.IRR = *p.IRR
	}
	if p.NPV != nil && p.TotalInvestment != nil && *p.TotalInvestment > 0 {
		m.Financial.ROI = *p.NPV / *p.TotalInvestment * 100
	}
	if p.SustainabilityScore != nil {
		m.Sustainability.Score = *p.SustainabilityScore
	}
	if p.CarbonFootprint != nil {
		m.Sustainability.CarbonFootprint = *p.CarbonFootprint
	}

	if demoFill {
		fillDemo(&m, p, rng)
	}

	m.OverallScore = overallScore(m)
	return m
}

// fillDemo replaces the still-missing fields. The rng draws happen in a
// fixed order so a bundle is reproducible for a given project id.
func fillDemo(m *domain.Metrics, p *projectsdomain.Project, rng *rand.Rand) {
	npv := (rng.Float64() - 0.25) * 1_600_000
	irr := 0.06 + rng.Float64()*0.22
	location := 4 + rng.Float64()*6
	accessibility := 4 + rng.Float64()*6
	sustainability := 4 + rng.Float64()*6
	carbon := p.TotalArea * 0.35 * (0.8 + rng.Float64()*0.4)

	if math.IsNaN(m.Financial.NPV) {
		m.Financial.NPV = math.Round(npv)
	}
	if math.IsNaN(m.Financial.IRR) {
		m.Financial.IRR = math.Round(irr*1000) / 1000
	}
	if math.IsNaN(m.Financial.ROI) {
		totalInvestment := p.TerrainValue + p.TotalArea*p.ConstructionCostPerM2
		if totalInvestment > 0 {
			m.Financial.ROI = math.Round(m.Financial.NPV/totalInvestment*1000) / 10
		} else {
			m.Financial.ROI = 0
		}
	}
	if math.IsNaN(m.Geospatial.LocationScore) {
		m.Geospatial.LocationScore = round1(location)
	}
	if math.IsNaN(m.Geospatial.AccessibilityScore) {
		m.Geospatial.AccessibilityScore = round1(accessibility)
	}
	if math.IsNaN(m.Sustainability.Score) {
		m.Sustainability.Score = round1(sustainability)
	}
	if math.IsNaN(m.Sustainability.CarbonFootprint) {
		m.Sustainability.CarbonFootprint = round1(carbon)
	}
}

// overallScore averages the three sub-scores (each 0-10) that are actually
// known; with nothing known it stays NaN.
func overallScore(m domain.Metrics) float64 {
	var sum float64
	var n int

	if fin := analysisdomain.FinancialScore(m.Financial.NPV, m.Financial.ROI); !math.IsNaN(fin) {
		sum += fin
		n++
	}
	if !math.IsNaN(m.Geospatial.LocationScore) && !math.IsNaN(m.Geospatial.AccessibilityScore) {
		sum += (m.Geospatial.LocationScore + m.Geospatial.AccessibilityScore) / 2
		n++
	}
	if !math.IsNaN(m.Sustainability.Score) {
		sum += m.Sustainability.Score
		n++
	}

	if n == 0 {
		return math.NaN()
	}
	return math.Round(sum/float64(n)*10) / 10
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
