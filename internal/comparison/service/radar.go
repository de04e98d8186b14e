package service

import (
	"math"

	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
)

// The radar view projects six heterogeneous metrics onto a regular hexagon.
// Each axis is normalized by a fixed ceiling (configuration constants, not
// values derived from the data) and clamped to [0,1], so an outlier fills
// its axis instead of blowing up the chart.

// RadarAxis identifies one of the six axes, in drawing order.
type RadarAxis string

const (
	AxisNPV            RadarAxis = "npv"
	AxisIRR            RadarAxis = "irr"
	AxisLocation       RadarAxis = "location"
	AxisAccessibility  RadarAxis = "accessibility"
	AxisSustainability RadarAxis = "sustainability"
	AxisROI            RadarAxis = "roi"
)

// RadarAxes is the fixed axis order; axis i sits at i*60 degrees.
var RadarAxes = [6]RadarAxis{
	AxisNPV,
	AxisIRR,
	AxisLocation,
	AxisAccessibility,
	AxisSustainability,
	AxisROI,
}

// RadarCeilings are the per-axis normalization maxima.
var RadarCeilings = map[RadarAxis]float64{
	AxisNPV:            2_000_000,
	AxisIRR:            0.30,
	AxisLocation:       10,
	AxisAccessibility:  10,
	AxisSustainability: 10,
	AxisROI:            100,
}

// RadarPoint is a vertex in chart coordinates relative to the hexagon
// center.
type RadarPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RadarAxisValue pairs an axis with its raw and normalized values. Raw is
// nil when the metric was missing or non-finite (JSON has no NaN).
type RadarAxisValue struct {
	Axis       RadarAxis `json:"axis"`
	Raw        *float64  `json:"raw,omitempty"`
	Normalized float64   `json:"normalized"`
}

// RadarPolygon is one project's hexagon overlay.
type RadarPolygon struct {
	ProjectID   int              `json:"project_id"`
	ProjectName string           `json:"project_name"`
	Values      []RadarAxisValue `json:"values"`
	Vertices    []RadarPoint     `json:"vertices"`
}

// NormalizeAxis maps a raw value onto [0,1] against the axis ceiling.
// Non-finite input normalizes to 0 (the axis center).
func NormalizeAxis(axis RadarAxis, raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0
	}
	ceiling := RadarCeilings[axis]
	if ceiling <= 0 {
		return 0
	}
	n := raw / ceiling
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

func axisRaw(m domain.Metrics, axis RadarAxis) float64 {
	switch axis {
	case AxisNPV:
		return m.Financial.NPV
	case AxisIRR:
		return m.Financial.IRR
	case AxisLocation:
		return m.Geospatial.LocationScore
	case AxisAccessibility:
		return m.Geospatial.AccessibilityScore
	case AxisSustainability:
		return m.Sustainability.Score
	case AxisROI:
		return m.Financial.ROI
	}
	return math.NaN()
}

// RadarProjection builds one project's hexagon. Axis i sits at
// i*60° - 90° so the first axis points straight up; the vertex radius is
// the normalized value scaled by maxRadius.
func RadarProjection(m domain.Metrics, maxRadius float64) RadarPolygon {
	poly := RadarPolygon{
		ProjectID:   m.ProjectID,
		ProjectName: m.ProjectName,
		Values:      make([]RadarAxisValue, len(RadarAxes)),
		Vertices:    make([]RadarPoint, len(RadarAxes)),
	}

	for i, axis := range RadarAxes {
		raw := axisRaw(m, axis)
		normalized := NormalizeAxis(axis, raw)
		poly.Values[i] = RadarAxisValue{Axis: axis, Raw: finitePtr(raw), Normalized: normalized}

		angle := float64(i)*math.Pi/3 - math.Pi/2
		radius := normalized * maxRadius
		poly.Vertices[i] = RadarPoint{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}

	return poly
}

func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
