package itinerary

// CombinationSearcher picks the best feasible flight, hotel and activity
// triple. Implementations must prefer the highest mean total score among
// triples whose total price is within budget and break ties by the first
// triple encountered with flights outermost.
type CombinationSearcher interface {
	Search(flights, hotels, activities []ScoredCandidate, budget float64) (best Combination, evaluated int, found bool)
}

// ExhaustiveSearch evaluates the full cartesian product. Cost is
// O(|flights| x |hotels| x |activities|), fine for the tens of candidates
// per category callers page in.
type ExhaustiveSearch struct{}

// Search implements CombinationSearcher.
func (ExhaustiveSearch) Search(
	flights, hotels, activities []ScoredCandidate,
	budget float64,
) (Combination, int, bool) {
	var (
		best      Combination
		found     bool
		evaluated int
	)

	for _, flight := range flights {
		for _, hotel := range hotels {
			for _, activity := range activities {
				evaluated++

				combo := newCombination(flight, hotel, activity)
				if !fitsBudget(combo, budget) {
					continue
				}

				if !found || combo.TotalScore > best.TotalScore {
					best = combo
					found = true
				}
			}
		}
	}

	return best, evaluated, found
}

func newCombination(flight, hotel, activity ScoredCandidate) Combination {
	return Combination{
		Flight:     flight,
		Hotel:      hotel,
		Activity:   activity,
		TotalPrice: flight.Metrics.Price + hotel.Metrics.Price + activity.Metrics.Price,
		TotalScore: (flight.TotalScore + hotel.TotalScore + activity.TotalScore) / 3,
	}
}

// fitsBudget is inclusive: a triple costing exactly the budget fits.
// Placeholders cost nothing, so only real candidates count against it.
func fitsBudget(combo Combination, budget float64) bool {
	return combo.TotalPrice <= budget
}

// placeholderFor stands in for a category with no real candidates so a plan
// can still be produced. It scores neutral on every axis and costs nothing.
func placeholderFor(category Category) ScoredCandidate {
	return ScoredCandidate{
		Candidate: Candidate{
			ID:       "placeholder-" + string(category),
			Category: category,
			Name:     "No " + string(category) + " option currently available",
		},
		Metrics: Metrics{
			PriceDefaulted:       true,
			RatingDefaulted:      true,
			ConvenienceDefaulted: true,
		},
		Scores: AxisScores{
			Budget:      neutralScore,
			Quality:     neutralScore,
			Convenience: neutralScore,
		},
		TotalScore:  neutralScore,
		Placeholder: true,
	}
}
