package pool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/dicepool/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	poolKeyPrefix  = "pool:"
	recentPoolsKey = "pools:recent" // Sorted set of pool IDs scored by update time

	defaultListLimit = 20
)

// ErrPoolNotFound is returned when a pool is not found
var ErrPoolNotFound = errors.New("pool not found")

// Config holds configuration for the Redis pool repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires stored pools, 0 keeps them forever
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed pool repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

// SavePool persists a pool record to Redis
func (r *redisRepository) SavePool(ctx context.Context, input *SavePoolInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("pool ID cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal pool: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, poolKeyPrefix+record.ID, recordJSON, r.ttl)
	pipe.ZAdd(ctx, recentPoolsKey, redis.Z{
		Score:  float64(record.UpdatedAt.UnixNano()),
		Member: record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save pool: %w", err)
	}

	return nil
}

// GetPool retrieves a pool record by ID from Redis
func (r *redisRepository) GetPool(ctx context.Context, input *GetPoolInput) (*models.PoolRecord, error) {
	if input == nil || input.PoolID == "" {
		return nil, errors.New("input and pool ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, poolKeyPrefix+input.PoolID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	var record models.PoolRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pool: %w", err)
	}

	return &record, nil
}

// DeletePool removes a pool record from Redis
func (r *redisRepository) DeletePool(ctx context.Context, input *DeletePoolInput) error {
	if input == nil || input.PoolID == "" {
		return errors.New("input and pool ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, poolKeyPrefix+input.PoolID)
	pipe.ZRem(ctx, recentPoolsKey, input.PoolID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete pool: %w", err)
	}

	if del.Val() == 0 {
		return ErrPoolNotFound
	}

	return nil
}

// ListPools retrieves the most recently updated pools from Redis.
// Index entries whose pool has expired are pruned as they are found.
func (r *redisRepository) ListPools(ctx context.Context, input *ListPoolsInput) (*ListPoolsOutput, error) {
	limit := defaultListLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	ids, err := r.client.ZRevRange(ctx, recentPoolsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}

	records := make([]*models.PoolRecord, 0, len(ids))
	for _, id := range ids {
		record, err := r.GetPool(ctx, &GetPoolInput{PoolID: id})
		if err != nil {
			if errors.Is(err, ErrPoolNotFound) {
				if err := r.client.ZRem(ctx, recentPoolsKey, id).Err(); err != nil {
					return nil, fmt.Errorf("failed to prune pool index: %w", err)
				}
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}

	return &ListPoolsOutput{
		Records: records,
	}, nil
}
