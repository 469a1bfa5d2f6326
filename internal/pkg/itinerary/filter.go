package itinerary

// Thresholds tune the soft constraint flags and best deal marking.
type Thresholds struct {
	// DominantWeight is the weight from which a preference counts as dominant.
	DominantWeight float64
	// ExpensiveMultiplier times the mean price marks a flight or hotel as
	// too expensive for a budget-dominant user.
	ExpensiveMultiplier float64
	// MinRating is the rating under which a candidate is flagged for a
	// quality-dominant user.
	MinRating float64
	// BestDealCount is how many top ranked regular candidates are marked
	// optimal.
	BestDealCount int
}

// DefaultThresholds returns the standard flag thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DominantWeight:      0.6,
		ExpensiveMultiplier: 1.6,
		MinRating:           3.5,
		BestDealCount:       3,
	}
}

// withDefaults fills zero fields from DefaultThresholds.
func (t Thresholds) withDefaults() Thresholds {
	def := DefaultThresholds()

	if t.DominantWeight <= 0 {
		t.DominantWeight = def.DominantWeight
	}
	if t.ExpensiveMultiplier <= 0 {
		t.ExpensiveMultiplier = def.ExpensiveMultiplier
	}
	if t.MinRating <= 0 {
		t.MinRating = def.MinRating
	}
	if t.BestDealCount <= 0 {
		t.BestDealCount = def.BestDealCount
	}

	return t
}

// FlagCandidates annotates soft constraint violations. It returns a new slice
// of the same length and order; no candidate is ever dropped.
// tripDurationDays is optional; nil or non-positive disables the long tour
// flag.
func FlagCandidates(
	scored []ScoredCandidate,
	ctx NormalizationContext,
	weights PreferenceWeights,
	thresholds Thresholds,
	tripDurationDays *int,
) []ScoredCandidate {
	thresholds = thresholds.withDefaults()

	results := make([]ScoredCandidate, len(scored))

	for i, candidate := range scored {
		category := candidate.Candidate.Category

		candidate.Flags = Flags{
			TooExpensiveForBudget: weights.Budget >= thresholds.DominantWeight &&
				isExpensive(category, candidate.Metrics.Price, ctx.Price, thresholds),
			LowQualityForPreference: weights.Quality >= thresholds.DominantWeight &&
				candidate.Metrics.Rating < thresholds.MinRating,
			LongTour: isLongTour(category, candidate.Metrics.Convenience, tripDurationDays),
		}

		results[i] = candidate
	}

	return results
}

// isExpensive compares flights and hotels against a multiple of the mean
// price; activities, whose prices spread much wider, against the set's 75th
// percentile.
func isExpensive(category Category, price float64, stats MetricStats, thresholds Thresholds) bool {
	if category == CategoryActivity {
		return !stats.Degenerate() && price > stats.P75
	}

	return price > thresholds.ExpensiveMultiplier*stats.Mean
}

func isLongTour(category Category, hours float64, tripDurationDays *int) bool {
	if tripDurationDays == nil || *tripDurationDays <= 0 || !category.hasDuration() {
		return false
	}

	return hours/24 > float64(*tripDurationDays)
}
