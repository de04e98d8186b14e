package service

import (
	"math"
	"math/rand"

	"github.com/geoprofit/geoprofit-dashboard/internal/analysis/domain"
	projectsdomain "github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
)

// Demo-mode data is deterministic: the generator is seeded by project id so
// repeated requests for the same project agree with each other. Ranges and
// banding follow the real engine (scores 0-10, category scores 0-100,
// certification thresholds).

const demoBuildableShare = 0.70 // share of the lot assumed buildable

func demoRand(projectID int) *rand.Rand {
	return rand.New(rand.NewSource(int64(projectID)))
}

// DemoFinancial fabricates a financial result from the project's own
// assumptions: the cash-flow series has the same shape the engine produces
// (terrain outlay at month 0, construction outflows, then sale inflows).
func DemoFinancial(p *projectsdomain.Project) *domain.FinancialResult {
	rng := demoRand(p.ID)

	constructionMonths := p.ConstructionTimeMonths
	if constructionMonths <= 0 {
		constructionMonths = 12
	}
	sellingMonths := p.SellingTimeMonths
	if sellingMonths <= 0 {
		sellingMonths = 12
	}
	discountRate := p.DiscountRate
	if discountRate <= 0 {
		discountRate = 0.12
	}

	buildableArea := p.TotalArea * demoBuildableShare
	sellingPrice := p.ConstructionCostPerM2 * (1.5 + rng.Float64()*0.4)
	if p.SellingPricePerM2 != nil {
		sellingPrice = *p.SellingPricePerM2
	}

	totalMonths := constructionMonths + sellingMonths
	flows := make([]float64, totalMonths+1)
	months := make([]int, totalMonths+1)

	flows[0] = -p.TerrainValue
	monthlyConstruction := buildableArea * p.ConstructionCostPerM2 / float64(constructionMonths)
	for m := 1; m <= constructionMonths; m++ {
		flows[m] = -monthlyConstruction
	}
	totalRevenue := buildableArea * sellingPrice
	monthlyRevenue := totalRevenue / float64(sellingMonths)
	for m := constructionMonths + 1; m <= totalMonths; m++ {
		flows[m] = monthlyRevenue
	}
	for m := range months {
		months[m] = m
	}

	monthlyRate := discountRate / 12
	npv := 0.0
	for m, f := range flows {
		npv += f / math.Pow(1+monthlyRate, float64(m))
	}

	totalCost := p.TerrainValue + buildableArea*p.ConstructionCostPerM2
	roi := 0.0
	if totalCost > 0 {
		roi = (totalRevenue - totalCost) / totalCost * 100
	}

	irr := 0.08 + rng.Float64()*0.17
	return &domain.FinancialResult{
		NPV:           npv,
		IRR:           &irr,
		ROIPercentage: roi,
		CashFlows:     flows,
		Months:        months,
		Source:        domain.SourceDemo,
	}
}

var (
	demoRiskFactors = []string{
		"Zona con riesgo de inundación moderado",
		"Distancia a vías principales superior a 2 km",
		"Pendiente del terreno superior al 15%",
		"Restricción ambiental parcial en el lote",
	}
	demoNearbyServices = []string{
		"Transporte público a 400 m",
		"Centro comercial a 1.2 km",
		"Hospital a 2.5 km",
		"Colegio a 800 m",
		"Parque urbano a 600 m",
	}
	demoGeoRecommendations = []string{
		"Verificar el plan de ordenamiento territorial vigente",
		"Solicitar estudio de suelos antes de diseñar cimentación",
		"Considerar accesos peatonales hacia la vía principal",
	}
)

// DemoGeospatial fabricates a geospatial result on the engine's 0-10 score
// scale.
func DemoGeospatial(p *projectsdomain.Project) *domain.GeospatialResult {
	rng := demoRand(p.ID)

	location := clampScore(5.0 + rng.Float64()*4.5)
	accessibility := clampScore(4.5 + rng.Float64()*5.0)

	return &domain.GeospatialResult{
		LocationScore:      round1(location),
		AccessibilityScore: round1(accessibility),
		RiskFactors:        pick(rng, demoRiskFactors, 2),
		NearbyServices:     pick(rng, demoNearbyServices, 3),
		Recommendations:    pick(rng, demoGeoRecommendations, 2),
		Source:             domain.SourceDemo,
	}
}

// Certification thresholds on the engine's 0-100 internal scale.
var demoCertifications = []struct {
	name     string
	minScore float64
}{
	{"LEED", 70},
	{"BREEAM", 65},
	{"CASA Colombia", 60},
	{"EDGE", 55},
}

var demoSusRecommendations = []string{
	"Incorporar paneles solares en cubierta",
	"Instalar sistema de recolección de aguas lluvias",
	"Usar materiales de construcción de bajo carbono",
	"Prever zonas verdes nativas en el diseño paisajístico",
}

// DemoSustainability fabricates a sustainability result; the overall score
// is 0-10, category scores 0-100, carbon footprint in tCO2e scaled by area.
func DemoSustainability(p *projectsdomain.Project) *domain.SustainabilityResult {
	rng := demoRand(p.ID)

	overall := clampScore(5.0 + rng.Float64()*4.5)
	carbon := p.TotalArea * 0.35 * (0.8 + rng.Float64()*0.4)

	var certs []string
	for _, c := range demoCertifications {
		if overall*10 >= c.minScore {
			certs = append(certs, c.name)
		}
	}
	if certs == nil {
		certs = []string{}
	}

	return &domain.SustainabilityResult{
		OverallScore:        round1(overall),
		CarbonFootprint:     round1(carbon),
		EnergyEfficiency:    round1(50 + rng.Float64()*45),
		WaterUsage:          round1(50 + rng.Float64()*45),
		WasteManagement:     round1(50 + rng.Float64()*45),
		GreenCertifications: certs,
		Recommendations:     pick(rng, demoSusRecommendations, 3),
		EnvironmentalImpact: domain.EnvironmentalImpact{
			CO2Reduction:  round1(10 + rng.Float64()*35),
			WaterSavings:  round1(15 + rng.Float64()*30),
			EnergySavings: round1(20 + rng.Float64()*35),
		},
		Source: domain.SourceDemo,
	}
}

func clampScore(v float64) float64 {
	return math.Min(10, math.Max(0, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func pick(rng *rand.Rand, pool []string, n int) []string {
	if n >= len(pool) {
		out := make([]string, len(pool))
		copy(out, pool)
		return out
	}
	idx := rng.Perm(len(pool))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}
