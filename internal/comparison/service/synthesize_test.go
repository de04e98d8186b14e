package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectsdomain "github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
)

func projectWith(id int, npv, irr, investment *float64) *projectsdomain.Project {
	return &projectsdomain.Project{
		ID:                    id,
		Name:                  "Proyecto",
		ZoneType:              projectsdomain.ZoneResidential,
		TotalArea:             1500,
		TerrainValue:          400000,
		ConstructionCostPerM2: 550,
		NPV:                   npv,
		IRR:                   irr,
		TotalInvestment:       investment,
	}
}

func f(v float64) *float64 { return &v }

func TestSynthesize_RealFieldsAreNeverOverwritten(t *testing.T) {
	p := projectWith(7, f(600000), f(0.14), f(2_000_000))

	withDemo := Synthesize(p, true)
	withoutDemo := Synthesize(p, false)

	assert.Equal(t, 600000.0, withDemo.Financial.NPV)
	assert.Equal(t, 0.14, withDemo.Financial.IRR)
	assert.InDelta(t, 30.0, withDemo.Financial.ROI, 1e-9)
	assert.Equal(t, withoutDemo.Financial.NPV, withDemo.Financial.NPV)
	assert.Equal(t, withoutDemo.Financial.IRR, withDemo.Financial.IRR)
}

func TestSynthesize_WithoutDemoFillMissingStaysNaN(t *testing.T) {
	m := Synthesize(projectWith(3, nil, nil, nil), false)

	assert.True(t, math.IsNaN(m.Financial.NPV))
	assert.True(t, math.IsNaN(m.Financial.IRR))
	assert.True(t, math.IsNaN(m.Financial.ROI))
	assert.True(t, math.IsNaN(m.Geospatial.LocationScore))
	assert.True(t, math.IsNaN(m.Sustainability.Score))
	assert.True(t, math.IsNaN(m.OverallScore))
}

func TestSynthesize_DemoFillIsDeterministicPerProject(t *testing.T) {
	first := Synthesize(projectWith(11, nil, nil, nil), true)
	second := Synthesize(projectWith(11, nil, nil, nil), true)
	other := Synthesize(projectWith(12, nil, nil, nil), true)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first.Financial.NPV, other.Financial.NPV)

	require.False(t, math.IsNaN(first.Geospatial.LocationScore))
	assert.GreaterOrEqual(t, first.Geospatial.LocationScore, 4.0)
	assert.LessOrEqual(t, first.Geospatial.LocationScore, 10.0)
	assert.GreaterOrEqual(t, first.Financial.IRR, 0.06)
	assert.LessOrEqual(t, first.Financial.IRR, 0.28)
}

func TestSynthesize_OverallScoreAveragesKnownParts(t *testing.T) {
	// Only the sustainability score is known, so it alone sets the overall.
	p := projectWith(5, nil, nil, nil)
	sus := 8.0
	p.SustainabilityScore = &sus

	m := Synthesize(p, false)
	assert.Equal(t, 8.0, m.OverallScore)
	assert.True(t, math.IsNaN(m.Financial.NPV))
}
