package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// ErrorResponse encodes the error response to the client. it will check if it's a sentinel error or unknown error.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr exception.ApplicationError
		body   dto.ErrorResponse
		status = http.StatusInternalServerError
	)

	if errors.As(err, &appErr) {
		if appErr.ErrorCode() != 0 {
			status = appErr.ErrorCode()
		}
		body = dto.ErrorResponse{Error: appErr.Message, Code: appErr.Code}

		if appErr.Cause != nil {
			slog.DebugContext(ctx, appErr.Message, slog.String("cause", appErr.Cause.Error()))
		}
	} else {
		body = dto.ErrorResponse{Error: http.StatusText(status)}

		slog.ErrorContext(ctx, err.Error(), slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(body)
}
