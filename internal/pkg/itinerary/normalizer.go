package itinerary

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// neutralScore is assigned when a metric does not vary across the set.
const neutralScore = 50.0

// MetricStats are the statistics of one metric over one candidate set.
type MetricStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	P25  float64 `json:"p25"`
	P50  float64 `json:"p50"`
	P75  float64 `json:"p75"`
}

// Degenerate reports whether every observed value is the same.
func (s MetricStats) Degenerate() bool {
	return s.Max == s.Min
}

// percentile returns the stored cut point for q (0.25, 0.5 or 0.75).
func (s MetricStats) percentile(q float64) float64 {
	switch q {
	case 0.25:
		return s.P25
	case 0.75:
		return s.P75
	}

	return s.P50
}

// NormalizationContext holds per-metric statistics for the candidate set of
// one call. It is built fresh for every call: "cheap" and "far" only mean
// something relative to the current pool.
type NormalizationContext struct {
	Price       MetricStats `json:"price"`
	Rating      MetricStats `json:"rating"`
	Convenience MetricStats `json:"convenience"`
}

// NewNormalizationContext computes min, max, mean and quartiles of each
// metric across metrics.
func NewNormalizationContext(metrics []Metrics) NormalizationContext {
	prices := make([]float64, len(metrics))
	ratings := make([]float64, len(metrics))
	convenience := make([]float64, len(metrics))

	for i, m := range metrics {
		prices[i] = m.Price
		ratings[i] = m.Rating
		convenience[i] = m.Convenience
	}

	return NormalizationContext{
		Price:       computeStats(prices),
		Rating:      computeStats(ratings),
		Convenience: computeStats(convenience),
	}
}

func computeStats(values []float64) MetricStats {
	if len(values) == 0 {
		return MetricStats{}
	}

	// stat.Quantile requires sorted input; sort a copy.
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := MetricStats{
		Min:  floats.Min(sorted),
		Max:  floats.Max(sorted),
		Mean: stat.Mean(sorted, nil),
	}

	if len(sorted) == 1 {
		s.P25, s.P50, s.P75 = sorted[0], sorted[0], sorted[0]
		return s
	}

	s.P25 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	s.P50 = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	s.P75 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)

	return s
}

// Scores maps the raw metrics of one candidate onto the 0-100 axis scores.
// Price and convenience are lower-is-better; rating is scored against the
// rating scale.
func (ctx NormalizationContext) Scores(m Metrics) AxisScores {
	return AxisScores{
		Budget:      lowerIsBetter(m.Price, ctx.Price),
		Quality:     ratingScore(m.Rating, ctx.Rating),
		Convenience: lowerIsBetter(m.Convenience, ctx.Convenience),
	}
}

func lowerIsBetter(value float64, s MetricStats) float64 {
	if s.Degenerate() {
		return neutralScore
	}

	return clampScore(100 * (s.Max - value) / (s.Max - s.Min))
}

func ratingScore(value float64, s MetricStats) float64 {
	if s.Degenerate() {
		return neutralScore
	}

	return clampScore(100 * value / RatingScaleMax)
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}

	return math.Max(0, math.Min(v, 100))
}
