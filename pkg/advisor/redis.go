package advisor

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	gderrors "github.com/vnykmshr/godeadline/pkg/common/errors"
)

// RedisConfig holds configuration for a Redis-backed store.
type RedisConfig struct {
	// Redis client for coordination
	Redis redis.UniversalClient

	// Prefix is the Redis key prefix for this store
	Prefix string

	// InstanceID uniquely identifies this application instance
	InstanceID string

	// OpTimeout is the timeout for Redis operations
	OpTimeout time.Duration

	// KeyTTL is how long Redis keys should live (defaults to 24 hours)
	KeyTTL time.Duration
}

// RedisStore shares duration history across application instances using
// Redis as the coordination backend.
type RedisStore struct {
	config RedisConfig

	// Lua script for the atomic record update
	recordScript *redis.Script
}

// NewRedisStore creates a Redis-backed store and registers this instance.
func NewRedisStore(config RedisConfig) (*RedisStore, error) {
	if config.Redis == nil {
		return nil, gderrors.NewValidationError("advisor", "redis", nil, "client is required")
	}
	if config.Prefix == "" {
		config.Prefix = "godeadline:advisor"
	}
	if config.InstanceID == "" {
		config.InstanceID = generateInstanceID()
	}
	if config.OpTimeout == 0 {
		config.OpTimeout = 500 * time.Millisecond
	}
	if config.KeyTTL == 0 {
		config.KeyTTL = 24 * time.Hour
	}

	s := &RedisStore{
		config:       config,
		recordScript: redis.NewScript(luaRecord),
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.OpTimeout)
	defer cancel()

	pipe := config.Redis.Pipeline()
	pipe.SAdd(ctx, s.instancesKey(), config.InstanceID)
	pipe.Expire(ctx, s.instancesKey(), config.KeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, &gderrors.OperationError{Module: "advisor", Operation: "register", Cause: err}
	}

	return s, nil
}

func (s *RedisStore) statsKey(work string) string {
	return s.config.Prefix + ":" + work + ":stats"
}

func (s *RedisStore) instancesKey() string {
	return s.config.Prefix + ":instances"
}

// Record adds one observed duration for work. The count, total, and max are
// updated atomically so concurrent instances never lose an observation.
func (s *RedisStore) Record(ctx context.Context, work string, d time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.OpTimeout)
	defer cancel()

	err := s.recordScript.Run(ctx, s.config.Redis,
		[]string{s.statsKey(work)},
		d.Nanoseconds(),
		int64(s.config.KeyTTL.Seconds()),
	).Err()
	if err != nil {
		return &gderrors.OperationError{Module: "advisor", Operation: "record", Cause: err, Context: work}
	}
	return nil
}

// Summary returns the aggregate history for work.
func (s *RedisStore) Summary(ctx context.Context, work string) (Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.OpTimeout)
	defer cancel()

	fields, err := s.config.Redis.HGetAll(ctx, s.statsKey(work)).Result()
	if err != nil {
		return Summary{}, &gderrors.OperationError{Module: "advisor", Operation: "summary", Cause: err, Context: work}
	}
	if len(fields) == 0 {
		return Summary{}, nil
	}

	count, _ := strconv.ParseInt(fields["count"], 10, 64)
	totalNS, _ := strconv.ParseInt(fields["total_ns"], 10, 64)
	maxNS, _ := strconv.ParseInt(fields["max_ns"], 10, 64)

	return Summary{
		Count: count,
		Total: time.Duration(totalNS),
		Max:   time.Duration(maxNS),
	}, nil
}

// Reset clears the history for work.
func (s *RedisStore) Reset(ctx context.Context, work string) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.OpTimeout)
	defer cancel()

	if err := s.config.Redis.Del(ctx, s.statsKey(work)).Err(); err != nil {
		return &gderrors.OperationError{Module: "advisor", Operation: "reset", Cause: err, Context: work}
	}
	return nil
}

// Close deregisters this instance. The shared history stays in Redis for the
// remaining instances.
func (s *RedisStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.OpTimeout)
	defer cancel()

	return s.config.Redis.SRem(ctx, s.instancesKey(), s.config.InstanceID).Err()
}

// Instances returns the currently registered application instances.
func (s *RedisStore) Instances(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.OpTimeout)
	defer cancel()

	instances, err := s.config.Redis.SMembers(ctx, s.instancesKey()).Result()
	if err != nil {
		return nil, &gderrors.OperationError{Module: "advisor", Operation: "instances", Cause: err}
	}
	return instances, nil
}

// generateInstanceID creates a unique identifier for this application instance.
func generateInstanceID() string {
	hostname, _ := os.Hostname()
	pid := os.Getpid()

	randomBytes := make([]byte, 4)
	_, _ = rand.Read(randomBytes)

	return fmt.Sprintf("%s-%d-%x-%d", hostname, pid, randomBytes, time.Now().Unix())
}

// Lua script for atomic record updates
const luaRecord = `
-- KEYS[1]: stats key (hash: count, total_ns, max_ns)
-- ARGV[1]: observed duration in nanoseconds
-- ARGV[2]: key TTL in seconds

local stats_key = KEYS[1]
local observed = tonumber(ARGV[1])
local ttl = tonumber(ARGV[2])

redis.call('HINCRBY', stats_key, 'count', 1)
redis.call('HINCRBY', stats_key, 'total_ns', observed)

local max = tonumber(redis.call('HGET', stats_key, 'max_ns') or 0)
if observed > max then
    redis.call('HSET', stats_key, 'max_ns', observed)
end

redis.call('EXPIRE', stats_key, ttl)

return redis.call('HGET', stats_key, 'count')
`
