package service

import (
	"math"
	"sort"

	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
)

// Rank orders metric bundles by the selected criteria, descending. The
// input slice is never mutated; ties keep their input order (stable sort).
// A missing or non-finite field ranks as -Inf so a partially-analyzed
// project still appears, just last.
func Rank(metrics []domain.Metrics, criteria domain.Criteria) []domain.Ranked {
	sorted := make([]domain.Metrics, len(metrics))
	copy(sorted, metrics)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i], criteria) > sortKey(sorted[j], criteria)
	})

	ranked := make([]domain.Ranked, len(sorted))
	for i, m := range sorted {
		ranked[i] = domain.Ranked{
			Metrics: m,
			Rank:    i + 1,
			Medal:   medal(i + 1),
		}
	}
	return ranked
}

func sortKey(m domain.Metrics, criteria domain.Criteria) float64 {
	var v float64
	switch criteria {
	case domain.CriteriaNPV:
		v = m.Financial.NPV
	case domain.CriteriaIRR:
		v = m.Financial.IRR
	case domain.CriteriaSustainability:
		v = m.Sustainability.Score
	default:
		v = m.OverallScore
	}
	if math.IsNaN(v) {
		return math.Inf(-1)
	}
	return v
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "gold"
	case 2:
		return "silver"
	case 3:
		return "bronze"
	}
	return ""
}
