package domain

import "math"

// FinancialScore maps NPV and ROI onto the shared 0-10 score scale used to
// average financial, geospatial, and sustainability sub-scores. The banding
// is intentionally coarse: a neutral 5 shifted by NPV (±3 at ±1.2M) and ROI
// (±2 at ±100%).
func FinancialScore(npv, roiPercentage float64) float64 {
	if math.IsNaN(npv) && math.IsNaN(roiPercentage) {
		return math.NaN()
	}

	score := 5.0
	if !math.IsNaN(npv) {
		score += clamp(npv/400000, -3, 3)
	}
	if !math.IsNaN(roiPercentage) {
		score += clamp(roiPercentage/50, -2, 2)
	}
	return clamp(score, 0, 10)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
