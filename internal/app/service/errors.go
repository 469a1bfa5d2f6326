package service

import (
	"net/http"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/exception"
)

var ErrTooManyCandidates = exception.ApplicationError{
	Code:       "TOO_MANY_CANDIDATES",
	Message:    "too many candidates",
	StatusCode: http.StatusBadRequest,
}
