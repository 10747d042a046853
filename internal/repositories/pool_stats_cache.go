package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-trust-lending/internal/logger"
	"github.com/sbilibin2017/gw-trust-lending/internal/models"
)

const poolStatsKey = "lending:pool_stats"

// setPoolStatsScript stores a snapshot unless the key already holds the same or
// a newer version of the same ledger. A snapshot of a different ledger always
// replaces the stored one.
var setPoolStatsScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'ledger_id')
if cur == ARGV[1] then
	local ver = tonumber(redis.call('HGET', KEYS[1], 'version'))
	if ver and ver >= tonumber(ARGV[2]) then
		return 0
	end
end
redis.call('HSET', KEYS[1], 'ledger_id', ARGV[1], 'version', ARGV[2], 'payload', ARGV[3])
if tonumber(ARGV[4]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[4])
end
return 1
`)

// ErrPoolStatsNotCached is returned when the read model holds no snapshot.
var ErrPoolStatsNotCached = errors.New("pool stats not found in cache")

// PoolStatsCacheRepository keeps the latest pool stats snapshot in Redis
type PoolStatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the snapshot
}

// NewPoolStatsCacheRepository creates a new repository instance with optional TTL
func NewPoolStatsCacheRepository(client *redis.Client, expiration time.Duration) *PoolStatsCacheRepository {
	return &PoolStatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPoolStats fetches the cached snapshot
func (r *PoolStatsCacheRepository) GetPoolStats(ctx context.Context) (*models.PoolStats, error) {
	val, err := r.client.HGet(ctx, poolStatsKey, "payload").Result()
	if err != nil {
		logger.Log.Infow(
			"key", poolStatsKey,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrPoolStatsNotCached
		}
		return nil, err
	}

	var stats models.PoolStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Infow(
			"key", poolStatsKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", poolStatsKey,
		"value", val,
		"error", nil,
	)

	return &stats, nil
}

// SetPoolStats stores the snapshot unless a newer one of the same ledger is
// already cached
func (r *PoolStatsCacheRepository) SetPoolStats(ctx context.Context, stats models.PoolStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	written, err := setPoolStatsScript.Run(ctx, r.client, []string{poolStatsKey},
		stats.LedgerID,
		strconv.FormatUint(stats.Version, 10),
		data,
		r.exp.Milliseconds(),
	).Int()

	logger.Log.Infow(
		"key", poolStatsKey,
		"value", string(data),
		"written", written == 1,
		"error", err,
	)

	return err
}

// DeletePoolStats drops the cached snapshot
func (r *PoolStatsCacheRepository) DeletePoolStats(ctx context.Context) error {
	err := r.client.Del(ctx, poolStatsKey).Err()

	logger.Log.Infow(
		"key", poolStatsKey,
		"result", "deleted",
		"error", err,
	)

	return err
}
