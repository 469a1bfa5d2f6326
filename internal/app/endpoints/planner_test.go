package endpoints

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/itinerary"
)

type stubPlanner struct {
	rankErr error
}

func (s stubPlanner) Rank(_ context.Context, req dto.RankRequest) (dto.RankResponse, error) {
	if s.rankErr != nil {
		return dto.RankResponse{}, s.rankErr
	}
	return dto.RankResponse{Category: req.Category}, nil
}

func (s stubPlanner) Optimize(_ context.Context, req dto.OptimizeRequest) (dto.OptimizeResponse, error) {
	return dto.OptimizeResponse{Insight: req.Currency}, nil
}

func TestMakePlannerEndpoint_Closure(t *testing.T) {
	endpointRequest := func(svc PlannerService, call func(e PlannerEndpoint) (interface{}, error),
		want interface{}, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := call(MakePlannerEndpoint(svc))

			if wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, wantErr) || err.Error() == wantErr.Error(), err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	ctx := context.Background()
	failure := errors.New("boom")

	t.Run("rank", endpointRequest(stubPlanner{}, func(e PlannerEndpoint) (interface{}, error) {
		return e.Rank(ctx, &dto.RankRequest{Category: itinerary.CategoryHotel})
	}, dto.RankResponse{Category: itinerary.CategoryHotel}, nil))

	t.Run("rank_error_wrapped", endpointRequest(stubPlanner{rankErr: failure}, func(e PlannerEndpoint) (interface{}, error) {
		return e.Rank(ctx, &dto.RankRequest{Category: itinerary.CategoryHotel})
	}, nil, failure))

	t.Run("rank_wrong_type", endpointRequest(stubPlanner{}, func(e PlannerEndpoint) (interface{}, error) {
		return e.Rank(ctx, dto.RankRequest{})
	}, nil, errors.New("invalid type")))

	t.Run("optimize", endpointRequest(stubPlanner{}, func(e PlannerEndpoint) (interface{}, error) {
		return e.Optimize(ctx, &dto.OptimizeRequest{Currency: "EUR"})
	}, dto.OptimizeResponse{Insight: "EUR"}, nil))

	t.Run("optimize_nil_request", endpointRequest(stubPlanner{}, func(e PlannerEndpoint) (interface{}, error) {
		return e.Optimize(ctx, (*dto.OptimizeRequest)(nil))
	}, nil, errors.New("invalid type")))
}
