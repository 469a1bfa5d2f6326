package config

import (
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/itinerary"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	LogFormat string     `mapstructure:"LOG_FORMAT"`
	HTTP      HTTP       `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	Cache     Cache      `mapstructure:",squash"`
	RateLimit RateLimit  `mapstructure:",squash"`
	Optimizer Optimizer  `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Cache controls the optimization result cache. Only whole responses are
// cached, keyed by the request content.
type Cache struct {
	Enabled     bool          `mapstructure:"CACHE_ENABLED"`
	Expiration  time.Duration `mapstructure:"CACHE_EXPIRATION"`
	LockTimeout time.Duration `mapstructure:"CACHE_LOCK_TIMEOUT"`
}

// RateLimit is the per client request budget. Zero disables limiting.
type RateLimit struct {
	RPS int `mapstructure:"RATE_LIMIT_RPS"`
}

// Optimizer tunes the scoring thresholds. Zero values keep the built-in
// defaults.
type Optimizer struct {
	DominantWeight           float64 `mapstructure:"OPTIMIZER_DOMINANT_WEIGHT"`
	ExpensiveMultiplier      float64 `mapstructure:"OPTIMIZER_EXPENSIVE_MULTIPLIER"`
	MinRating                float64 `mapstructure:"OPTIMIZER_MIN_RATING"`
	BestDealCount            int     `mapstructure:"OPTIMIZER_BEST_DEAL_COUNT"`
	MaxCandidatesPerCategory int     `mapstructure:"OPTIMIZER_MAX_CANDIDATES_PER_CATEGORY"`
}

// Thresholds converts the optimizer settings into itinerary thresholds.
func (o Optimizer) Thresholds() itinerary.Thresholds {
	return itinerary.Thresholds{
		DominantWeight:      o.DominantWeight,
		ExpensiveMultiplier: o.ExpensiveMultiplier,
		MinRating:           o.MinRating,
		BestDealCount:       o.BestDealCount,
	}
}
