package jobs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// DefaultQueueKey is the sorted set holding pending assignments, scored by due time in ms
	DefaultQueueKey = "trace:assignments:pending"
	// pollBatch caps how many due ids one poll claims
	pollBatch = 100
)

// RedisScheduler keeps pending assignments in a Redis sorted set so they
// survive restarts. Run must be started for anything to fire.
type RedisScheduler struct {
	client   *redis.Client
	key      string
	assigner Assigner
	interval time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// NewRedisScheduler creates a scheduler on client that polls every interval
func NewRedisScheduler(client *redis.Client, assigner Assigner, interval time.Duration, log *zap.Logger) *RedisScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &RedisScheduler{
		client:   client,
		key:      DefaultQueueKey,
		assigner: assigner,
		interval: interval,
		log:      log,
		now:      time.Now,
	}
}

// Schedule records the complaint as due at now+delay
func (s *RedisScheduler) Schedule(ctx context.Context, complaintID uint, delay time.Duration) error {
	due := s.now().Add(delay)
	err := s.client.ZAdd(ctx, s.key, &redis.Z{
		Score:  float64(due.UnixMilli()),
		Member: strconv.FormatUint(uint64(complaintID), 10),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to queue assignment: %w", err)
	}
	return nil
}

// Run polls until ctx is cancelled
func (s *RedisScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("[JOB] Redis assignment poller started", zap.String("key", s.key), zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("[JOB] Redis assignment poller stopped")
			return nil
		case <-ticker.C:
			if _, err := s.Poll(ctx); err != nil && ctx.Err() == nil {
				s.log.Warn("[JOB] Redis poll failed", zap.Error(err))
			}
		}
	}
}

// Poll claims every due id and fires it. Only the caller whose ZREM removed
// the member fires, so several pollers never assign the same id twice.
func (s *RedisScheduler) Poll(ctx context.Context) (int, error) {
	max := strconv.FormatInt(s.now().UnixMilli(), 10)
	members, err := s.client.ZRangeByScore(ctx, s.key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   max,
		Count: pollBatch,
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read due assignments: %w", err)
	}

	fired := 0
	for _, member := range members {
		removed, err := s.client.ZRem(ctx, s.key, member).Result()
		if err != nil {
			return fired, fmt.Errorf("failed to claim assignment %s: %w", member, err)
		}
		if removed != 1 {
			continue
		}

		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			s.log.Warn("[JOB] Dropping malformed queue member", zap.String("member", member))
			continue
		}

		fire(s.assigner, s.log, uint(id), "redis")
		fired++
	}
	return fired, nil
}
