package plancache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/app/dto"
)

const (
	cachePrefix = "plan:cache:"
	lockPrefix  = "plan:lock:"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// PlanCache stores finished rank and optimize responses. Each entry is a
// whole response for one exact request; partial state such as statistics of
// a candidate set is never stored.
type PlanCache struct {
	redis RedisClient
}

func NewPlanCache(redis RedisClient) *PlanCache {
	return &PlanCache{
		redis: redis,
	}
}

// GetCacheKey hashes the JSON encoding of req. Map keys are encoded in
// sorted order so equal requests always share a key.
func (c *PlanCache) GetCacheKey(kind string, req any) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	sum := sha256.Sum256(data)

	return cachePrefix + kind + ":" + hex.EncodeToString(sum[:]), nil
}

func (c *PlanCache) GetLockKey(cacheKey string) string {
	return lockPrefix + strings.TrimPrefix(cacheKey, cachePrefix)
}

func (c *PlanCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *PlanCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *PlanCache) GetRanking(ctx context.Context, key string) (dto.RankResponse, error) {
	var resp dto.RankResponse

	err := c.get(ctx, key, &resp)

	return resp, err
}

func (c *PlanCache) SetRanking(ctx context.Context, key string, resp dto.RankResponse, expiration time.Duration) error {
	return c.set(ctx, key, resp, expiration)
}

func (c *PlanCache) GetPlan(ctx context.Context, key string) (dto.OptimizeResponse, error) {
	var resp dto.OptimizeResponse

	err := c.get(ctx, key, &resp)

	return resp, err
}

func (c *PlanCache) SetPlan(ctx context.Context, key string, resp dto.OptimizeResponse, expiration time.Duration) error {
	return c.set(ctx, key, resp, expiration)
}

func (c *PlanCache) get(ctx context.Context, key string, dst any) error {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return nil
}

func (c *PlanCache) set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := c.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}
