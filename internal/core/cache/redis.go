package cache

import (
	"context"
	"fmt"

	"nutrimed/internal/infrastructure/config"
	"nutrimed/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore redis 後端的查詢結果快取
type RedisStore struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewRedisStore 創建 redis 快取並測試連線
func NewRedisStore(cfg config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		cfg:    cfg,
	}, nil
}

// Get 獲取快取
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}
	return data, nil
}

// Set 設置快取
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, s.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// redisKey 生成帶前綴的快取鍵
func (s *RedisStore) redisKey(key string) string {
	return fmt.Sprintf("nutrimed:query:%s", hashKey(key))
}
