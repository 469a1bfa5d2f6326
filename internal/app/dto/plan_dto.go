package dto

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/exception"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/itinerary"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/utils"
)

const defaultCurrency = "USD"

// RankRequest asks for one category's candidates to be scored and ordered.
type RankRequest struct {
	Category         itinerary.Category    `json:"category" validate:"required,category"`
	Candidates       []itinerary.Candidate `json:"candidates"`
	Preferences      map[string]any        `json:"preferences,omitempty"`
	TripDurationDays *int                  `json:"trip_duration_days,omitempty" validate:"omitempty,gte=0"`
	Currency         string                `json:"currency,omitempty" validate:"omitempty,iso4217"`
}

func (r *RankRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *RankRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return validateCategory("candidates", r.Category, r.Candidates)
}

// OptimizeRequest asks for the best flight, hotel and activity combination.
// An absent budget means no ceiling; any given value, zero included, is
// applied as is.
type OptimizeRequest struct {
	Flights     []itinerary.Candidate `json:"flights"`
	Hotels      []itinerary.Candidate `json:"hotels"`
	Activities  []itinerary.Candidate `json:"activities"`
	Preferences map[string]any        `json:"preferences,omitempty"`
	Budget      *float64              `json:"budget,omitempty"`
	Currency    string                `json:"currency,omitempty" validate:"omitempty,iso4217"`
}

func (r *OptimizeRequest) Bind(_ *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *OptimizeRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if err := validateCategory("flights", itinerary.CategoryFlight, r.Flights); err != nil {
		return err
	}

	if err := validateCategory("hotels", itinerary.CategoryHotel, r.Hotels); err != nil {
		return err
	}

	return validateCategory("activities", itinerary.CategoryActivity, r.Activities)
}

// validateCategory rejects candidates tagged with a category other than the
// list they were sent in. Untagged candidates are accepted.
func validateCategory(field string, want itinerary.Category, candidates []itinerary.Candidate) error {
	for i, c := range candidates {
		if c.Category != "" && c.Category != want {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message: fmt.Sprintf("%s[%d] has category %s, expected %s",
					field, i, c.Category, want),
			}
		}
	}

	return nil
}

// CandidateResult is a scored candidate with human readable price and
// convenience.
type CandidateResult struct {
	itinerary.ScoredCandidate
	FormattedPrice       string `json:"formatted_price"`
	FormattedConvenience string `json:"formatted_convenience"`
}

// NewCandidateResult formats c. The candidate's own currency wins over
// fallbackCurrency.
func NewCandidateResult(c itinerary.ScoredCandidate, fallbackCurrency string) CandidateResult {
	result := CandidateResult{ScoredCandidate: c}

	if c.Placeholder {
		return result
	}

	result.FormattedPrice = utils.FormatPrice(c.Metrics.Price, currencyOf(c.Metrics.Currency, fallbackCurrency))

	if c.Candidate.Category == itinerary.CategoryHotel {
		result.FormattedConvenience = utils.FormatDistance(c.Metrics.Convenience)
	} else {
		result.FormattedConvenience = utils.FormatHours(c.Metrics.Convenience)
	}

	return result
}

func currencyOf(codes ...string) string {
	for _, c := range codes {
		if c != "" {
			return c
		}
	}

	return defaultCurrency
}

type Metadata struct {
	TotalResults     int  `json:"total_results"`
	Evaluated        int  `json:"evaluated,omitempty"`
	ProcessingTimeMs int  `json:"processing_time_ms"`
	CacheHit         bool `json:"cache_hit"`
}

// RankResponse is the response struct for the rank endpoint
type RankResponse struct {
	Category   itinerary.Category          `json:"category"`
	Weights    itinerary.PreferenceWeights `json:"weights"`
	Candidates []CandidateResult           `json:"candidates"`
	Metadata   Metadata                    `json:"metadata"`
}

// Plan is the chosen combination.
type Plan struct {
	Flight              CandidateResult `json:"flight"`
	Hotel               CandidateResult `json:"hotel"`
	Activity            CandidateResult `json:"activity"`
	TotalPrice          float64         `json:"total_price"`
	FormattedTotalPrice string          `json:"formatted_total_price"`
	TotalScore          float64         `json:"total_score"`
}

// OptimizeResponse is the response struct for the optimize endpoint
type OptimizeResponse struct {
	Plan     Plan                        `json:"plan"`
	Weights  itinerary.PreferenceWeights `json:"weights"`
	Insight  string                      `json:"insight"`
	Metadata Metadata                    `json:"metadata"`
}

// NewOptimizeResponse maps an optimization result. The total is printed in
// requestCurrency, or the flight's currency when none was requested.
func NewOptimizeResponse(result itinerary.Result, requestCurrency string) OptimizeResponse {
	combo := result.Combination
	totalCurrency := currencyOf(requestCurrency, combo.Flight.Metrics.Currency)

	return OptimizeResponse{
		Plan: Plan{
			Flight:              NewCandidateResult(combo.Flight, requestCurrency),
			Hotel:               NewCandidateResult(combo.Hotel, requestCurrency),
			Activity:            NewCandidateResult(combo.Activity, requestCurrency),
			TotalPrice:          combo.TotalPrice,
			FormattedTotalPrice: utils.FormatPrice(combo.TotalPrice, totalCurrency),
			TotalScore:          combo.TotalScore,
		},
		Weights: result.Weights,
		Insight: result.Insight,
		Metadata: Metadata{
			TotalResults: 1,
			Evaluated:    result.Evaluated,
		},
	}
}
