package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutrimed/internal/pkg/common"
)

// Deduplicator 短時間內重複 POST 請求的攔截器
// 過期指紋在 check 內順帶清除，不另起清理協程
type Deduplicator struct {
	mu        sync.Mutex
	seen      map[string]time.Time
	window    time.Duration
	lastPurge time.Time
}

// NewDeduplicator 創建去重器
func NewDeduplicator(window time.Duration) *Deduplicator {
	if window <= 0 {
		window = time.Second
	}
	return &Deduplicator{
		seen:      make(map[string]time.Time),
		window:    window,
		lastPurge: time.Now(),
	}
}

// check 記錄指紋並回報是否在去重窗口內重複
func (d *Deduplicator) check(fingerprint string) bool {
	now := time.Now()
	d.mu.Lock()
	defer d.mu.Unlock()

	// 超過一個窗口沒清過就先清，窗口外的指紋已無去重作用
	if now.Sub(d.lastPurge) > d.window {
		d.purgeLocked(now)
	}

	if last, ok := d.seen[fingerprint]; ok && now.Sub(last) <= d.window {
		return true
	}
	d.seen[fingerprint] = now
	return false
}

// purgeLocked 清除窗口外的指紋，呼叫端需持有鎖
func (d *Deduplicator) purgeLocked(now time.Time) {
	for k, t := range d.seen {
		if now.Sub(t) > d.window {
			delete(d.seen, k)
		}
	}
	d.lastPurge = now
}

// Deduplication 請求去重中間件，只攔截 POST
func Deduplication(window time.Duration) gin.HandlerFunc {
	deduper := NewDeduplicator(window)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		// 計算請求體哈希
		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}

			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// 恢復請求體供後續 handler 讀取
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		fingerprint := c.ClientIP() + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		if deduper.check(fingerprint) {
			common.LogInfo("Duplicate request rejected",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Request too frequent",
				"code":  common.ErrCodeTooManyRequests,
			})
			return
		}

		c.Next()
	}
}
