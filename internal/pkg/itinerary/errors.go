package itinerary

import (
	"net/http"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/exception"
)

var ErrEmptyRequiredCategory = exception.ApplicationError{
	Code:       "EMPTY_REQUIRED_CATEGORY",
	Message:    "no flight options available",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrNoFeasibleCombination = exception.ApplicationError{
	Code:       "NO_FEASIBLE_COMBINATION",
	Message:    "no combination fits the budget, try raising the budget or relaxing preferences",
	StatusCode: http.StatusUnprocessableEntity,
}
