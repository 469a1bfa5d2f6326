package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/exception"
)

// MakeHandlerFunc serves e through a go-kit server that reports failures with
// ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	server := kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	)

	return server.ServeHTTP
}

// DecodeRequest decodes the JSON body into a new T and runs its Bind hook.
// The endpoint receives a *T.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, exception.ApplicationError{
			Code:       "INVALID_REQUEST_BODY",
			Message:    "invalid request body",
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	}

	return req, nil
}
