package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/itinerary"
)

const (
	rankCacheKind     = "rank"
	optimizeCacheKind = "optimize"
)

type PlanCacher interface {
	GetCacheKey(kind string, req any) (string, error)
	GetLockKey(cacheKey string) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetRanking(ctx context.Context, key string) (dto.RankResponse, error)
	SetRanking(ctx context.Context, key string, resp dto.RankResponse, expiration time.Duration) error
	GetPlan(ctx context.Context, key string) (dto.OptimizeResponse, error)
	SetPlan(ctx context.Context, key string, resp dto.OptimizeResponse, expiration time.Duration) error
}

// Optimizer is implemented by *itinerary.Optimizer.
type Optimizer interface {
	Rank(category itinerary.Category, candidates []itinerary.Candidate,
		weights itinerary.PreferenceWeights, tripDurationDays *int) []itinerary.ScoredCandidate
	Optimize(flights, hotels, activities []itinerary.Candidate, weights itinerary.PreferenceWeights,
		budget float64) (itinerary.Result, error)
}

type PlannerService struct {
	Optimizer       Optimizer
	Cache           PlanCacher
	CacheExpiration time.Duration
	LockTimeout     time.Duration
	MaxCandidates   int
}

// NewPlannerService builds the service. A nil cache disables result caching
// and a non-positive maxCandidates disables the per category size check.
func NewPlannerService(optimizer Optimizer, cache PlanCacher,
	cacheExpiration time.Duration, lockTimeout time.Duration,
	maxCandidates int) *PlannerService {
	return &PlannerService{
		Optimizer:       optimizer,
		Cache:           cache,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
		MaxCandidates:   maxCandidates,
	}
}

// Rank scores and orders the candidates of one category.
func (s *PlannerService) Rank(ctx context.Context, req dto.RankRequest) (dto.RankResponse, error) {
	if err := s.checkSize(req.Category, len(req.Candidates)); err != nil {
		return dto.RankResponse{}, err
	}

	startTime := time.Now()

	cacheKey := s.cacheKey(ctx, rankCacheKind, req)
	if cacheKey != "" {
		resp, err := s.Cache.GetRanking(ctx, cacheKey)
		if err == nil {
			resp.Metadata.CacheHit = true
			resp.Metadata.ProcessingTimeMs = int(time.Since(startTime).Milliseconds())

			return resp, nil
		}

		slog.DebugContext(ctx, "ranking not cached", slog.String("error", err.Error()))
	}

	weights := itinerary.NormalizeWeights(req.Preferences)
	ranked := s.Optimizer.Rank(req.Category, req.Candidates, weights, req.TripDurationDays)

	logDefaulted(ctx, ranked...)

	candidates := make([]dto.CandidateResult, len(ranked))
	for i, c := range ranked {
		candidates[i] = dto.NewCandidateResult(c, req.Currency)
	}

	resp := dto.RankResponse{
		Category:   req.Category,
		Weights:    weights,
		Candidates: candidates,
		Metadata: dto.Metadata{
			TotalResults: len(candidates),
		},
	}

	s.store(ctx, cacheKey, func(ctx context.Context, key string) error {
		return s.Cache.SetRanking(ctx, key, resp, s.CacheExpiration)
	})

	resp.Metadata.ProcessingTimeMs = int(time.Since(startTime).Milliseconds())

	slog.InfoContext(ctx, "ranked candidates",
		slog.String("category", string(req.Category)),
		slog.Int("count", len(candidates)))

	return resp, nil
}

// Optimize selects the best flight, hotel and activity combination within
// the request budget. A request without a budget has no ceiling.
func (s *PlannerService) Optimize(ctx context.Context, req dto.OptimizeRequest) (dto.OptimizeResponse, error) {
	for category, n := range map[itinerary.Category]int{
		itinerary.CategoryFlight:   len(req.Flights),
		itinerary.CategoryHotel:    len(req.Hotels),
		itinerary.CategoryActivity: len(req.Activities),
	} {
		if err := s.checkSize(category, n); err != nil {
			return dto.OptimizeResponse{}, err
		}
	}

	startTime := time.Now()

	cacheKey := s.cacheKey(ctx, optimizeCacheKind, req)
	if cacheKey != "" {
		resp, err := s.Cache.GetPlan(ctx, cacheKey)
		if err == nil {
			resp.Metadata.CacheHit = true
			resp.Metadata.ProcessingTimeMs = int(time.Since(startTime).Milliseconds())

			return resp, nil
		}

		slog.DebugContext(ctx, "plan not cached", slog.String("error", err.Error()))
	}

	weights := itinerary.NormalizeWeights(req.Preferences)

	budget := itinerary.NoBudget()
	if req.Budget != nil {
		budget = *req.Budget
	}

	result, err := s.Optimizer.Optimize(req.Flights, req.Hotels, req.Activities, weights, budget)
	if err != nil {
		slog.InfoContext(ctx, "no plan produced",
			slog.Float64("budget", budget),
			slog.String("error", err.Error()))

		return dto.OptimizeResponse{}, fmt.Errorf("optimize: %w", err)
	}

	logDefaulted(ctx, result.Combination.Flight, result.Combination.Hotel, result.Combination.Activity)

	resp := dto.NewOptimizeResponse(result, req.Currency)

	s.store(ctx, cacheKey, func(ctx context.Context, key string) error {
		return s.Cache.SetPlan(ctx, key, resp, s.CacheExpiration)
	})

	resp.Metadata.ProcessingTimeMs = int(time.Since(startTime).Milliseconds())

	slog.InfoContext(ctx, "plan optimized",
		slog.Int("evaluated", result.Evaluated),
		slog.Float64("total_price", result.Combination.TotalPrice),
		slog.Float64("total_score", result.Combination.TotalScore))

	return resp, nil
}

// logDefaulted reports candidates whose fields could not be read and were
// scored with category defaults instead.
func logDefaulted(ctx context.Context, scored ...itinerary.ScoredCandidate) {
	for _, c := range scored {
		if c.Placeholder || !c.Metrics.Defaulted() {
			continue
		}

		slog.DebugContext(ctx, "candidate scored with defaults",
			slog.String("id", c.Candidate.ID),
			slog.String("category", string(c.Candidate.Category)),
			slog.Bool("price", c.Metrics.PriceDefaulted),
			slog.Bool("rating", c.Metrics.RatingDefaulted),
			slog.Bool("convenience", c.Metrics.ConvenienceDefaulted))
	}
}

func (s *PlannerService) checkSize(category itinerary.Category, n int) error {
	if s.MaxCandidates > 0 && n > s.MaxCandidates {
		return ErrTooManyCandidates.WithMessage(
			fmt.Sprintf("%d %s candidates exceed the limit of %d", n, category, s.MaxCandidates))
	}

	return nil
}

// cacheKey returns "" when caching is disabled or the key cannot be built.
func (s *PlannerService) cacheKey(ctx context.Context, kind string, req any) string {
	if s.Cache == nil {
		return ""
	}

	key, err := s.Cache.GetCacheKey(kind, req)
	if err != nil {
		slog.WarnContext(ctx, "failed to build cache key", slog.String("error", err.Error()))
		return ""
	}

	return key
}

// store writes a computed response under cacheKey. When concurrent requests
// compute the same response only the one holding the lock writes it; the
// others return their own result without touching the cache.
// Cache failures are logged and never fail the request.
func (s *PlannerService) store(ctx context.Context, cacheKey string,
	set func(ctx context.Context, key string) error) {
	if cacheKey == "" {
		return
	}

	lockKey := s.Cache.GetLockKey(cacheKey)

	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire lock", slog.String("error", err.Error()))
		return
	}

	if !acquired {
		return
	}

	defer func() {
		if err := s.Cache.ReleaseLock(ctx, lockKey); err != nil {
			slog.WarnContext(ctx, "failed to release lock", slog.String("error", err.Error()))
		}
	}()

	if err := set(ctx, cacheKey); err != nil {
		slog.WarnContext(ctx, "failed to cache response", slog.String("error", err.Error()))
	}
}
