package cache

import (
	"context"
	"fmt"

	"nutrimed/internal/infrastructure/config"
)

// Store 查詢結果快取介面，memory 與 redis 後端共用
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// NewStore 依設定建立快取後端；停用時回傳 nil
func NewStore(cfg config.CacheConfig) (Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	switch cfg.Backend {
	case "redis":
		return NewRedisStore(cfg)
	case "memory", "":
		return NewManager(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
