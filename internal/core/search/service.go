package search

import (
	"context"
	"encoding/json"

	"nutrimed/internal/core/cache"
	"nutrimed/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 查詢服務：在解析器前面加一層結果快取
// 解析器本身無狀態且必然成功，快取失效時直接重算
type Service struct {
	resolver *Resolver
	store    cache.Store
	name     string // 快取鍵前綴，區分食譜與疾病查詢
}

// NewService 創建查詢服務；store 為 nil 時不使用快取
func NewService(resolver *Resolver, store cache.Store, name string) *Service {
	return &Service{
		resolver: resolver,
		store:    store,
		name:     name,
	}
}

// Resolve 解析查詢，優先回傳快取結果
func (s *Service) Resolve(ctx context.Context, rawQuery string) []string {
	if s.store == nil {
		return s.resolver.Resolve(rawQuery)
	}

	key := s.name + ":" + rawQuery
	if data, err := s.store.Get(ctx, key); err == nil {
		var titles []string
		if err := json.Unmarshal([]byte(data), &titles); err == nil {
			common.LogCacheHit(s.name)
			return titles
		}
		common.LogWarn("快取內容無法解析，改為重新計算",
			zap.String("類型", s.name),
			zap.Error(err),
		)
	} else {
		common.LogCacheMiss(s.name)
	}

	titles := s.resolver.Resolve(rawQuery)

	if data, err := common.ToJSON(titles); err == nil {
		if err := s.store.Set(ctx, key, data); err != nil {
			common.LogWarn("快取寫入失敗",
				zap.String("類型", s.name),
				zap.Error(err),
			)
		}
	}

	return titles
}
