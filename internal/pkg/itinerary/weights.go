package itinerary

import "math"

// Axis is one of the three scoring dimensions.
type Axis string

const (
	AxisBudget      Axis = "budget"
	AxisQuality     Axis = "quality"
	AxisConvenience Axis = "convenience"
)

// PreferenceWeights is the user's three-axis preference distribution.
type PreferenceWeights struct {
	Budget      float64 `json:"budget"`
	Quality     float64 `json:"quality"`
	Convenience float64 `json:"convenience"`
}

// defaultWeights is used whenever no usable preference exists. Exact thirds
// keep the default free of a dominant axis.
var defaultWeights = PreferenceWeights{
	Budget:      1.0 / 3,
	Quality:     1.0 / 3,
	Convenience: 1.0 / 3,
}

// DefaultWeights returns the balanced default distribution.
func DefaultWeights() PreferenceWeights {
	return defaultWeights
}

// NormalizeWeights turns a raw, possibly malformed preference map into a
// distribution summing to one. Missing, non-numeric, non-finite and negative
// entries count as zero; if nothing positive remains the defaults are used.
func NormalizeWeights(raw map[string]any) PreferenceWeights {
	if len(raw) == 0 {
		return DefaultWeights()
	}

	return PreferenceWeights{
		Budget:      weightValue(raw[string(AxisBudget)]),
		Quality:     weightValue(raw[string(AxisQuality)]),
		Convenience: weightValue(raw[string(AxisConvenience)]),
	}.Normalize()
}

// Normalize applies the NormalizeWeights rule to a typed vector.
func (w PreferenceWeights) Normalize() PreferenceWeights {
	budget := clampWeight(w.Budget)
	quality := clampWeight(w.Quality)
	convenience := clampWeight(w.Convenience)

	total := budget + quality + convenience
	if total <= 0 || math.IsInf(total, 0) {
		return DefaultWeights()
	}

	return PreferenceWeights{
		Budget:      budget / total,
		Quality:     quality / total,
		Convenience: convenience / total,
	}
}

// Sum returns the total of the three weights.
func (w PreferenceWeights) Sum() float64 {
	return w.Budget + w.Quality + w.Convenience
}

// Of returns the weight of axis a.
func (w PreferenceWeights) Of(a Axis) float64 {
	switch a {
	case AxisBudget:
		return w.Budget
	case AxisQuality:
		return w.Quality
	case AxisConvenience:
		return w.Convenience
	}

	return 0
}

// Dominant returns the axis whose weight is strictly greater than both
// others. ok is false when no axis dominates.
func (w PreferenceWeights) Dominant() (Axis, bool) {
	switch {
	case w.Budget > w.Quality && w.Budget > w.Convenience:
		return AxisBudget, true
	case w.Quality > w.Budget && w.Quality > w.Convenience:
		return AxisQuality, true
	case w.Convenience > w.Budget && w.Convenience > w.Quality:
		return AxisConvenience, true
	}

	return "", false
}

func weightValue(v any) float64 {
	f, ok := parseNumber(v)
	if !ok {
		return 0
	}

	return clampWeight(f)
}

func clampWeight(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}

	return v
}
