package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidInput    = errors.New("invalid project input")
)

// ZoneType classifies the intended land use of a parcel.
type ZoneType string

const (
	ZoneResidential ZoneType = "residential"
	ZoneCommercial  ZoneType = "commercial"
	ZoneMixed       ZoneType = "mixed"
	ZoneIndustrial  ZoneType = "industrial"
)

func (z ZoneType) Valid() bool {
	switch z {
	case ZoneResidential, ZoneCommercial, ZoneMixed, ZoneIndustrial:
		return true
	}
	return false
}

// ProjectStatus tracks a project through its analysis lifecycle.
type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusAnalysis  ProjectStatus = "analysis"
	StatusCompleted ProjectStatus = "completed"
	StatusArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusAnalysis, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Project is a parcel of land plus the construction assumptions used by the
// analysis engine. Persistence is owned by the engine; this tier only moves
// the record around.
type Project struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location"`
	ZoneType    ZoneType `json:"zone_type"`

	TotalArea             float64 `json:"total_area"`
	TerrainValue          float64 `json:"terrain_value"`
	ConstructionCostPerM2 float64 `json:"construction_cost_per_m2"`
	InvestmentHorizon     int     `json:"investment_horizon"`

	SellingPricePerM2      *float64 `json:"selling_price_per_m2,omitempty"`
	ConstructionTimeMonths int      `json:"construction_time_months,omitempty"`
	SellingTimeMonths      int      `json:"selling_time_months,omitempty"`
	DiscountRate           float64  `json:"discount_rate,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Status ProjectStatus `json:"status"`

	// Precomputed by the engine, absent until a financial analysis ran.
	NPV                 *float64 `json:"npv,omitempty"`
	IRR                 *float64 `json:"irr,omitempty"`
	SustainabilityScore *float64 `json:"sustainability_score,omitempty"`
	CarbonFootprint     *float64 `json:"carbon_footprint,omitempty"`
	TotalInvestment     *float64 `json:"total_investment,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ProjectInput is the creation/full-replacement payload. Updates replace the
// whole record; there is no partial patch.
type ProjectInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" binding:"required"`
	ZoneType    ZoneType `json:"zone_type" binding:"required"`

	TotalArea             float64 `json:"total_area" binding:"required,gt=0"`
	TerrainValue          float64 `json:"terrain_value" binding:"required,gt=0"`
	ConstructionCostPerM2 float64 `json:"construction_cost_per_m2" binding:"required,gt=0"`
	InvestmentHorizon     int     `json:"investment_horizon" binding:"required,gte=1,lte=30"`

	SellingPricePerM2      *float64 `json:"selling_price_per_m2,omitempty"`
	ConstructionTimeMonths int      `json:"construction_time_months,omitempty"`
	SellingTimeMonths      int      `json:"selling_time_months,omitempty"`
	DiscountRate           float64  `json:"discount_rate,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

const defaultDiscountRate = 0.12

// Normalize fills the optional assumption fields with the engine's defaults.
func (in *ProjectInput) Normalize() {
	if in.ConstructionTimeMonths == 0 {
		in.ConstructionTimeMonths = 12
	}
	if in.SellingTimeMonths == 0 {
		in.SellingTimeMonths = 12
	}
	if in.DiscountRate == 0 {
		in.DiscountRate = defaultDiscountRate
	}
}

// Validate checks the constraints the gin binding tags cannot express.
func (in *ProjectInput) Validate() error {
	if !in.ZoneType.Valid() {
		return fmt.Errorf("invalid zone_type %q", in.ZoneType)
	}
	if in.SellingPricePerM2 != nil && *in.SellingPricePerM2 <= 0 {
		return fmt.Errorf("selling_price_per_m2 must be positive")
	}
	if in.DiscountRate < 0 || in.DiscountRate > 1 {
		return fmt.Errorf("discount_rate must be within [0,1]")
	}
	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90) {
		return fmt.Errorf("latitude out of range")
	}
	if in.Longitude != nil && (*in.Longitude < -180 || *in.Longitude > 180) {
		return fmt.Errorf("longitude out of range")
	}
	return nil
}

// ProjectList is the paginated list envelope returned by the engine.
type ProjectList struct {
	Items []Project `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Size  int       `json:"size"`
	Pages int       `json:"pages"`
}
