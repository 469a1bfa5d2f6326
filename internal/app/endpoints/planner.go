package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
)

type PlannerService interface {
	Rank(ctx context.Context, req dto.RankRequest) (dto.RankResponse, error)
	Optimize(ctx context.Context, req dto.OptimizeRequest) (dto.OptimizeResponse, error)
}

type PlannerEndpoint struct {
	Rank     endpoint.Endpoint
	Optimize endpoint.Endpoint
}

func MakePlannerEndpoint(service PlannerService) PlannerEndpoint {
	return PlannerEndpoint{
		Rank:     makeRankEndpoint(service),
		Optimize: makeOptimizeEndpoint(service),
	}
}

func makeRankEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RankRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.Rank(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return resp, nil
	}
}

func makeOptimizeEndpoint(service PlannerService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.OptimizeRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		resp, err := service.Optimize(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("planner service: %w", err)
		}

		return resp, nil
	}
}
