package itinerary

import (
	"fmt"
	"math"
)

// Optimizer ranks single categories and picks cross-category combinations.
// It holds no per-call state and is safe for concurrent use once built.
type Optimizer struct {
	thresholds Thresholds
	amplified  map[Category]bool
	searcher   CombinationSearcher
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithThresholds overrides the flag thresholds. Zero fields keep defaults.
func WithThresholds(t Thresholds) Option {
	return func(o *Optimizer) {
		o.thresholds = t.withDefaults()
	}
}

// WithAmplifiedCategories selects which categories go through preference
// amplification. By default only activities do.
func WithAmplifiedCategories(categories ...Category) Option {
	return func(o *Optimizer) {
		o.amplified = make(map[Category]bool, len(categories))
		for _, c := range categories {
			o.amplified[c] = true
		}
	}
}

// WithSearcher replaces the combination search strategy.
func WithSearcher(s CombinationSearcher) Option {
	return func(o *Optimizer) {
		if s != nil {
			o.searcher = s
		}
	}
}

// New builds an Optimizer.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		thresholds: DefaultThresholds(),
		amplified:  map[Category]bool{CategoryActivity: true},
		searcher:   ExhaustiveSearch{},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

var defaultOptimizer = New()

// NoBudget is the budget value that accepts every combination.
func NoBudget() float64 {
	return math.Inf(1)
}

// Rank scores, flags and orders one category's candidates using the default
// Optimizer.
func Rank(category Category, candidates []Candidate, weights PreferenceWeights, tripDurationDays *int) []ScoredCandidate {
	return defaultOptimizer.Rank(category, candidates, weights, tripDurationDays)
}

// Optimize selects the best combination using the default Optimizer.
func Optimize(flights, hotels, activities []Candidate, weights PreferenceWeights, budget float64) (Result, error) {
	return defaultOptimizer.Optimize(flights, hotels, activities, weights, budget)
}

// Rank scores, flags and orders one category's candidates. Every candidate is
// scored as category whatever its own tag says. An empty category falls back
// to the first tagged candidate. The caller's slice is left untouched.
func (o *Optimizer) Rank(
	category Category,
	candidates []Candidate,
	weights PreferenceWeights,
	tripDurationDays *int,
) []ScoredCandidate {
	if len(candidates) == 0 {
		return []ScoredCandidate{}
	}

	if category == "" {
		category = firstCategory(candidates)
	}

	weights = weights.Normalize()

	scored := o.scoreCategory(category, candidates, weights, tripDurationDays)
	ranked := SortByScore(scored)

	return MarkBestDeals(ranked, o.thresholds.BestDealCount)
}

// Optimize picks one flight, one hotel and one activity maximizing the mean
// total score within budget. Empty hotel or activity lists are replaced by a
// single placeholder; an empty flight list fails with
// ErrEmptyRequiredCategory. The budget is inclusive and applies to every
// value, zero and negative included; pass NoBudget for no ceiling.
func (o *Optimizer) Optimize(
	flights, hotels, activities []Candidate,
	weights PreferenceWeights,
	budget float64,
) (Result, error) {
	if len(flights) == 0 {
		return Result{}, ErrEmptyRequiredCategory
	}

	weights = weights.Normalize()

	scoredFlights := o.scoreCategory(CategoryFlight, flights, weights, nil)
	scoredHotels := o.scoreOrPlaceholder(CategoryHotel, hotels, weights)
	scoredActivities := o.scoreOrPlaceholder(CategoryActivity, activities, weights)

	best, evaluated, found := o.searcher.Search(scoredFlights, scoredHotels, scoredActivities, budget)
	if !found {
		return Result{}, ErrNoFeasibleCombination.WithCause(
			fmt.Errorf("%d combinations evaluated against budget %.2f", evaluated, budget))
	}

	return Result{
		Combination: best,
		Weights:     weights,
		Insight:     ComposeInsight(weights),
		Evaluated:   evaluated,
	}, nil
}

func (o *Optimizer) scoreOrPlaceholder(
	category Category,
	candidates []Candidate,
	weights PreferenceWeights,
) []ScoredCandidate {
	if len(candidates) == 0 {
		return []ScoredCandidate{placeholderFor(category)}
	}

	return o.scoreCategory(category, candidates, weights, nil)
}

// scoreCategory runs extraction, normalization, optional amplification,
// scoring and flagging over one category. Candidates are retagged as category
// on a copy so a list never mixes hours and kilometres in one context.
func (o *Optimizer) scoreCategory(
	category Category,
	candidates []Candidate,
	weights PreferenceWeights,
	tripDurationDays *int,
) []ScoredCandidate {
	tagged := make([]Candidate, len(candidates))
	for i, c := range candidates {
		c.Category = category
		tagged[i] = c
	}

	scored, ctx := ScoreCandidates(tagged, weights, o.amplified[category])

	return FlagCandidates(scored, ctx, weights, o.thresholds, tripDurationDays)
}

func firstCategory(candidates []Candidate) Category {
	for _, c := range candidates {
		if c.Category != "" {
			return c.Category
		}
	}

	return ""
}
