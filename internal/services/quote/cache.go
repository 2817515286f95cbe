package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Naiem890/momentum/internal/dateutil"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "momentum_quote:"

// Service serves one quote per calendar day, cached in Redis so every
// request on a given day sees the same quote.
type Service struct {
	provider *Provider
	redis    *redis.Client
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates the daily quote service. redisClient may be nil;
// the service then fetches on every call.
func NewService(provider *Provider, redisClient *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		redis:    redisClient,
		log:      logger,
		now:      time.Now,
	}
}

// Daily returns today's quote, fetching and caching it on first use.
func (s *Service) Daily(ctx context.Context) Quote {
	key := cacheKeyPrefix + dateutil.Today(s.now())

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var q Quote
			if err := json.Unmarshal(cached, &q); err == nil {
				return q
			}
		}
	}

	q := s.provider.Fetch(ctx)

	if s.redis != nil {
		if data, err := json.Marshal(q); err == nil {
			if err := s.redis.Set(ctx, key, data, 48*time.Hour).Err(); err != nil {
				s.log.Warn("failed_to_cache_daily_quote", zap.Error(err))
			}
		}
	}

	return q
}

// Invalidate drops the cached quote for the given day key.
func (s *Service) Invalidate(ctx context.Context, day string) error {
	if s.redis == nil {
		return nil
	}
	if err := s.redis.Del(ctx, cacheKeyPrefix+day).Err(); err != nil {
		return fmt.Errorf("failed to invalidate quote cache: %w", err)
	}
	return nil
}
