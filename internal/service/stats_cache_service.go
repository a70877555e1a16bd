package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key for the reporting counters
	statsCacheKey = "reports:stats"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second
)

// CountsSnapshot holds the reporting counters served from cache.
type CountsSnapshot struct {
	Patients     int64 `json:"patients"`
	Physicians   int64 `json:"physicians"`
	Appointments int64 `json:"appointments"`
}

// StatsCacheService keeps the reporting counters in Redis with a short TTL.
// Scheduling and directory writes invalidate the key; the database stays
// authoritative.
type StatsCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewStatsCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *StatsCacheService {
	return &StatsCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Get returns the cached snapshot, or nil on a cache miss.
func (s *StatsCacheService) Get(ctx context.Context) (*CountsSnapshot, error) {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(opCtx, statsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot CountsSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		// A corrupt value is treated as a miss and overwritten on next Set.
		s.log.Warnf("Discarding unreadable stats cache value: %+v", err)
		return nil, nil
	}
	return &snapshot, nil
}

func (s *StatsCacheService) Set(ctx context.Context, snapshot *CountsSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	return s.redisClient.Set(opCtx, statsCacheKey, raw, s.ttl).Err()
}

// Invalidate drops the cached counters after a write.
func (s *StatsCacheService) Invalidate(ctx context.Context) error {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	return s.redisClient.Del(opCtx, statsCacheKey).Err()
}
