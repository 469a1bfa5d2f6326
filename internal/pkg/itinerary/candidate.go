package itinerary

import "encoding/json"

// Category tags the kind of offer a candidate represents.
type Category string

const (
	CategoryFlight   Category = "flight"
	CategoryHotel    Category = "hotel"
	CategoryActivity Category = "activity"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFlight, CategoryHotel, CategoryActivity:
		return true
	}

	return false
}

// hasDuration reports whether the convenience metric of c is a duration in
// hours. Hotels use distance from the center instead.
func (c Category) hasDuration() bool {
	return c == CategoryFlight || c == CategoryActivity
}

// Candidate is one offer supplied by the caller. Price, Rating, Duration and
// Distance are left untyped because provider payloads use several shapes for
// the same field; ExtractMetrics resolves them.
type Candidate struct {
	ID       string          `json:"id"`
	Category Category        `json:"category"`
	Name     string          `json:"name,omitempty"`
	Price    any             `json:"price,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Rating   any             `json:"rating,omitempty"`
	Duration any             `json:"duration,omitempty"`
	Distance any             `json:"distance,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// AxisScores holds the three per-axis scores, each in [0, 100].
type AxisScores struct {
	Budget      float64 `json:"budget"`
	Quality     float64 `json:"quality"`
	Convenience float64 `json:"convenience"`
}

// Flags are soft constraint annotations. They never remove a candidate.
type Flags struct {
	TooExpensiveForBudget   bool `json:"too_expensive_for_budget"`
	LowQualityForPreference bool `json:"low_quality_for_preference"`
	LongTour                bool `json:"long_tour"`
}

// ScoredCandidate wraps the caller's candidate with everything computed for
// it during one call. The original record is kept by value and never merged
// with computed fields.
type ScoredCandidate struct {
	Candidate   Candidate  `json:"candidate"`
	Metrics     Metrics    `json:"metrics"`
	Scores      AxisScores `json:"scores"`
	TotalScore  float64    `json:"total_score"`
	Flags       Flags      `json:"flags"`
	Optimal     bool       `json:"optimal"`
	Placeholder bool       `json:"placeholder"`
}

// Combination is one candidate per category evaluated jointly.
type Combination struct {
	Flight     ScoredCandidate `json:"flight"`
	Hotel      ScoredCandidate `json:"hotel"`
	Activity   ScoredCandidate `json:"activity"`
	TotalPrice float64         `json:"total_price"`
	TotalScore float64         `json:"total_score"`
}

// Result is the outcome of a successful Optimize call.
type Result struct {
	Combination Combination       `json:"combination"`
	Weights     PreferenceWeights `json:"weights"`
	Insight     string            `json:"insight"`
	Evaluated   int               `json:"evaluated"`
}
