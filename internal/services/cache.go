package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

var ErrCacheMiss = errors.New("key not found")

// CacheService stores JSON snapshots in redis. Calls go through a circuit breaker so a
// dead redis fails fast instead of stalling every request.
type CacheService struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	logger  *logrus.Entry
}

func NewCacheService(client *redis.Client, failureThreshold int, logger *logrus.Entry) *CacheService {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "redis-cache",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failureThreshold)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Warn("Cache circuit breaker state changed")
		},
	})

	return &CacheService{
		client:  client,
		breaker: breaker,
		logger:  logger,
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	_, err = s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, key, data, expiration).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"key": key,
		"ttl": expiration,
	}).Debug("Cached value")
	return nil
}

// Get decodes the value at key into dest, returning ErrCacheMiss when it is absent.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		data, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			// a miss is not a redis failure
			return nil, nil
		}
		return data, err
	})
	if err != nil {
		return fmt.Errorf("failed to get cache: %w", err)
	}

	data, _ := res.([]byte)
	if data == nil {
		return ErrCacheMiss
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, keys...).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

func (s *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.Exists(ctx, key).Result()
	})
	if err != nil {
		return false, fmt.Errorf("failed to check cache existence: %w", err)
	}
	return res.(int64) > 0, nil
}

func (s *CacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// State reports the breaker state for readiness checks.
func (s *CacheService) State() gobreaker.State {
	return s.breaker.State()
}

// Cache key generators
func LineupCacheKey(clubID string) string {
	return fmt.Sprintf("lineup:%s", clubID)
}

func AcademyCacheKey(clubID string) string {
	return fmt.Sprintf("academy:%s", clubID)
}
