package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"nutrimed/internal/infrastructure/config"
	"nutrimed/internal/pkg/common"

	"go.uber.org/zap"
)

// Manager 記憶體快取：TTL 過期 + 容量滿時 LRU 淘汰
type Manager struct {
	cfg   config.CacheConfig
	mu    sync.Mutex
	store map[string]cacheEntry
	stats cacheStats
	stop  chan struct{}
}

// cacheEntry 快取條目
type cacheEntry struct {
	value       string
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 快取統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewManager 創建記憶體快取管理器
func NewManager(cfg config.CacheConfig) *Manager {
	m := &Manager{
		cfg:   cfg,
		store: make(map[string]cacheEntry),
		stop:  make(chan struct{}),
	}

	// 啟動清理過期快取的協程
	go m.startCleanup()

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.MaxSize),
		zap.Duration("存活時間", cfg.TTL),
		zap.Duration("清理間隔", cfg.CleanupInterval),
	)

	return m
}

// Get 獲取快取值
func (m *Manager) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hashed := hashKey(key)
	entry, exists := m.store[hashed]
	if !exists {
		m.stats.misses++
		return "", common.ErrCacheMiss
	}

	// 過期即刪除
	if time.Now().After(entry.expiresAt) {
		delete(m.store, hashed)
		m.stats.evictions++
		m.stats.misses++
		return "", common.ErrCacheMiss
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[hashed] = entry
	m.stats.hits++

	return entry.value, nil
}

// Set 設置快取值
func (m *Manager) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 容量滿時先清過期，再做 LRU 淘汰
	if len(m.store) >= m.cfg.MaxSize {
		m.cleanupLocked()
		if len(m.store) >= m.cfg.MaxSize {
			m.evictLRULocked()
		}
		if len(m.store) >= m.cfg.MaxSize {
			common.LogWarn("快取已滿",
				zap.Int("目前容量", len(m.store)),
			)
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	m.store[hashKey(key)] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(m.cfg.TTL),
		lastAccess: now,
	}
	return nil
}

// Close 停止清理協程
func (m *Manager) Close() error {
	close(m.stop)
	return nil
}

// hashKey 計算快取鍵的 SHA-256 哈希值
func hashKey(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:])
}

// startCleanup 週期性清理過期快取
func (m *Manager) startCleanup() {
	ticker := time.NewTicker(m.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			evicted := m.cleanupLocked()
			m.mu.Unlock()
			if evicted > 0 {
				common.LogInfo("快取清理執行",
					zap.Int("清理數量", evicted),
				)
			}
		case <-m.stop:
			return
		}
	}
}

// cleanupLocked 清除已過期的條目，呼叫端需持有鎖
func (m *Manager) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			m.stats.evictions++
			count++
		}
	}
	return count
}

// evictLRULocked 淘汰最少使用的條目，呼叫端需持有鎖
func (m *Manager) evictLRULocked() {
	var victim string
	var victimAccess time.Time
	var victimCount int

	for key, entry := range m.store {
		if victim == "" ||
			entry.accessCount < victimCount ||
			(entry.accessCount == victimCount && entry.lastAccess.Before(victimAccess)) {
			victim = key
			victimAccess = entry.lastAccess
			victimCount = entry.accessCount
		}
	}

	if victim != "" {
		delete(m.store, victim)
		m.stats.evictions++
	}
}
