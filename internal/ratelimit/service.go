package ratelimit

import (
	"context"
	"fmt"
	"time"

	"league-server/internal/clients/redis"
	"league-server/internal/observability"

	"github.com/google/uuid"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// SortedSet is the slice of the Redis client the sliding window needs
type SortedSet interface {
	IsEnabled() bool
	ZRemRangeByScore(ctx context.Context, key, min, max string) error
	ZCard(ctx context.Context, key string) (int64, error)
	ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error)
	ZAdd(ctx context.Context, key string, members ...redis.Z) error
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

// Service throttles operator actions per admin subject. Without Redis every
// request is allowed.
type Service struct {
	redis  SortedSet
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a new rate limiting service. limit is actions per minute;
// zero or less disables throttling.
func NewService(redis SortedSet, limit int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// CheckRateLimit records one action for key and reports whether it is allowed.
// Redis failures allow the request.
func (s *Service) CheckRateLimit(ctx context.Context, key string) RateLimitResult {
	now := s.now()
	if s.limit <= 0 || s.redis == nil || !s.redis.IsEnabled() {
		return RateLimitResult{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(window)}
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: key},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	result, err := s.checkRateLimitRedis(ctx, key, now)
	if err != nil {
		s.logger.WarnWithError(ctx, "Redis rate limit check failed, allowing request", err)
		return RateLimitResult{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(window)}
	}
	return result
}

// checkRateLimitRedis implements a sliding window over a sorted set of
// request timestamps in milliseconds
func (s *Service) checkRateLimitRedis(ctx context.Context, key string, now time.Time) (RateLimitResult, error) {
	redisKey := "rl:" + key
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()

	if err := s.redis.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStartMs)); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.redis.ZCard(ctx, redisKey)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		resetAt := now.Add(window)
		oldest, err := s.redis.ZRangeWithScores(ctx, redisKey, 0, 0)
		if err == nil && len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(window)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// Members must be unique even for requests in the same millisecond
	err = s.redis.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d-%s", nowMs, uuid.NewString()),
	})
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := s.redis.Expire(ctx, redisKey, 2*window); err != nil {
		s.logger.WarnWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
