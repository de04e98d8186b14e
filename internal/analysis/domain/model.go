package domain

import "errors"

var (
	ErrCacheMiss         = errors.New("analysis result not cached")
	ErrUnknownKind       = errors.New("unknown analysis kind")
	ErrEngineUnavailable = errors.New("analysis engine unavailable")
)

// Kind selects which engine analysis to run.
type Kind string

const (
	KindFinancial      Kind = "financial"
	KindGeospatial     Kind = "geospatial"
	KindSustainability Kind = "sustainability"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFinancial, KindGeospatial, KindSustainability:
		return true
	}
	return false
}

// Source records where a result came from so demo data is never mistaken
// for engine output.
type Source string

const (
	SourceEngine Source = "engine"
	SourceDemo   Source = "demo"
)

// FinancialResult mirrors the engine's financial analysis payload. IRR may
// be absent or non-finite; consumers must format it defensively.
type FinancialResult struct {
	NPV           float64   `json:"npv"`
	IRR           *float64  `json:"irr,omitempty"`
	ROIPercentage float64   `json:"roi_percentage"`
	CashFlows     []float64 `json:"cash_flows"`
	Months        []int     `json:"months,omitempty"`

	// Opaque engine extras (costs/revenue/profitability breakdowns) passed
	// through untouched.
	BasicMetrics map[string]any `json:"basic_metrics,omitempty"`

	Source Source `json:"source,omitempty"`
}

// GeospatialResult carries the engine's location scoring, both on a 0-10
// scale.
type GeospatialResult struct {
	LocationScore      float64  `json:"location_score"`
	AccessibilityScore float64  `json:"accessibility_score"`
	RiskFactors        []string `json:"risk_factors"`
	NearbyServices     []string `json:"nearby_services"`
	Recommendations    []string `json:"recommendations"`

	Source Source `json:"source,omitempty"`
}

// EnvironmentalImpact summarizes projected savings against a conventional
// build.
type EnvironmentalImpact struct {
	CO2Reduction  float64 `json:"co2_reduction"`
	WaterSavings  float64 `json:"water_savings"`
	EnergySavings float64 `json:"energy_savings"`
}

// SustainabilityResult carries the engine's sustainability scoring; the
// overall score is on a 0-10 scale, category scores on 0-100.
type SustainabilityResult struct {
	OverallScore        float64             `json:"overall_score"`
	CarbonFootprint     float64             `json:"carbon_footprint"`
	EnergyEfficiency    float64             `json:"energy_efficiency"`
	WaterUsage          float64             `json:"water_usage"`
	WasteManagement     float64             `json:"waste_management"`
	GreenCertifications []string            `json:"green_certifications"`
	Recommendations     []string            `json:"recommendations"`
	EnvironmentalImpact EnvironmentalImpact `json:"environmental_impact"`

	Source Source `json:"source,omitempty"`
}
