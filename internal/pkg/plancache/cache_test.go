package plancache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/itinerary"
)

func TestPlanCache_GetCacheKey_Closure(t *testing.T) {
	c := &PlanCache{}

	budget, tighter, zero := 450.0, 400.0, 0.0

	req := dto.OptimizeRequest{
		Flights:     []itinerary.Candidate{{ID: "f1", Price: 300}},
		Preferences: map[string]any{"budget": 0.7, "quality": 0.2, "convenience": 0.1},
		Budget:      &budget,
	}
	reordered := dto.OptimizeRequest{
		Flights:     []itinerary.Candidate{{ID: "f1", Price: 300}},
		Preferences: map[string]any{"convenience": 0.1, "quality": 0.2, "budget": 0.7},
		Budget:      &budget,
	}
	otherBudget := reordered
	otherBudget.Budget = &tighter
	zeroBudget := reordered
	zeroBudget.Budget = &zero
	noBudget := reordered
	noBudget.Budget = nil

	key, err := c.GetCacheKey("optimize", req)
	require.NoError(t, err)

	t.Run("prefixed", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(key, "plan:cache:optimize:"), key)
		assert.Len(t, strings.TrimPrefix(key, "plan:cache:optimize:"), 64)
	})

	t.Run("map_order_does_not_matter", func(t *testing.T) {
		got, err := c.GetCacheKey("optimize", reordered)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	})

	t.Run("budget_changes_key", func(t *testing.T) {
		got, err := c.GetCacheKey("optimize", otherBudget)
		require.NoError(t, err)
		assert.NotEqual(t, key, got)
	})

	t.Run("zero_budget_differs_from_no_budget", func(t *testing.T) {
		zeroKey, err := c.GetCacheKey("optimize", zeroBudget)
		require.NoError(t, err)
		noKey, err := c.GetCacheKey("optimize", noBudget)
		require.NoError(t, err)
		assert.NotEqual(t, zeroKey, noKey)
	})

	t.Run("kind_changes_key", func(t *testing.T) {
		got, err := c.GetCacheKey("rank", req)
		require.NoError(t, err)
		assert.NotEqual(t, key, got)
	})

	t.Run("unencodable_request", func(t *testing.T) {
		_, err := c.GetCacheKey("rank", map[string]any{"bad": make(chan int)})
		assert.Error(t, err)
	})
}

func TestPlanCache_GetLockKey(t *testing.T) {
	c := &PlanCache{}

	assert.Equal(t, "plan:lock:rank:abc", c.GetLockKey("plan:cache:rank:abc"))
}

func TestPlanCache_AcquireLock_Closure(t *testing.T) {
	acquireLockRequest := func(key string, timeout time.Duration, mockSetup func(m *MockRedisClient), want bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewPlanCache(m)

			got, err := c.AcquireLock(context.Background(), key, timeout)
			if err != nil {
				t.Fatalf("AcquireLock returned error: %v", err)
			}
			if got != want {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	t.Run("lock_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(true, nil))
	}, true))

	t.Run("lock_not_acquired", acquireLockRequest("test-key", 5*time.Second, func(m *MockRedisClient) {
		m.On("SetNX", mock.Anything, "test-key", "1", 5*time.Second).Return(redis.NewBoolResult(false, nil))
	}, false))
}

func TestPlanCache_ReleaseLock(t *testing.T) {
	m := NewMockRedisClient(t)
	m.On("Del", mock.Anything, "test-key").Return(redis.NewIntResult(1, nil))

	assert.NoError(t, NewPlanCache(m).ReleaseLock(context.Background(), "test-key"))
}

func TestPlanCache_SetPlan_Closure(t *testing.T) {
	setPlanRequest := func(key string, resp dto.OptimizeResponse, exp time.Duration, mockSetup func(m *MockRedisClient), wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewPlanCache(m)

			err := c.SetPlan(context.Background(), key, resp, exp)
			if (err != nil) != wantErr {
				t.Fatalf("SetPlan error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	resp := dto.OptimizeResponse{Insight: "balanced"}

	t.Run("success", setPlanRequest("test-cache", resp, 10*time.Minute, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "test-cache", mock.MatchedBy(func(v []byte) bool {
			return strings.Contains(string(v), `"insight":"balanced"`)
		}), 10*time.Minute).Return(redis.NewStatusResult("OK", nil))
	}, false))

	t.Run("redis_error", setPlanRequest("test-cache", resp, 10*time.Minute, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "test-cache", mock.Anything, 10*time.Minute).
			Return(redis.NewStatusResult("", redis.ErrClosed))
	}, true))
}

func TestPlanCache_GetRanking_Closure(t *testing.T) {
	getRankingRequest := func(key string, mockSetup func(m *MockRedisClient), want dto.RankResponse, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewPlanCache(m)

			got, err := c.GetRanking(context.Background(), key)
			if (err != nil) != wantErr {
				t.Fatalf("GetRanking error = %v, wantErr %v", err, wantErr)
			}
			if !wantErr {
				diff := cmp.Diff(want, got)
				if diff != "" {
					t.Fatalf("GetRanking mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	want := dto.RankResponse{
		Category: itinerary.CategoryHotel,
		Candidates: []dto.CandidateResult{{
			ScoredCandidate: itinerary.ScoredCandidate{
				Candidate:  itinerary.Candidate{ID: "h1", Category: itinerary.CategoryHotel},
				TotalScore: 50,
			},
			FormattedPrice: "$120.00",
		}},
		Metadata: dto.Metadata{TotalResults: 1},
	}

	t.Run("success", getRankingRequest("test-cache", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "test-cache").Return(redis.NewStringResult(
			`{"category":"hotel","candidates":[{"candidate":{"id":"h1","category":"hotel"},"total_score":50,`+
				`"formatted_price":"$120.00"}],"metadata":{"total_results":1}}`, nil))
	}, want, false))

	t.Run("cache_miss", getRankingRequest("test-cache", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "test-cache").Return(redis.NewStringResult("", redis.Nil))
	}, dto.RankResponse{}, true))

	t.Run("corrupt_entry", getRankingRequest("test-cache", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "test-cache").Return(redis.NewStringResult("{not json", nil))
	}, dto.RankResponse{}, true))
}

func TestPlanCache_GetPlan(t *testing.T) {
	m := NewMockRedisClient(t)
	m.On("Get", mock.Anything, "plan").Return(redis.NewStringResult(`{"insight":"savings","plan":{"total_price":450}}`, nil))

	got, err := NewPlanCache(m).GetPlan(context.Background(), "plan")

	require.NoError(t, err)
	assert.Equal(t, "savings", got.Insight)
	assert.Equal(t, 450.0, got.Plan.TotalPrice)
}
