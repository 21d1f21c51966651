package recipe

import (
	"net/http"
	"strings"

	"nutrimed/internal/core/catalog"
	"nutrimed/internal/core/search"
	"nutrimed/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QueryRequest 食譜查詢請求（聊天機器人輸入框的內容）
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse 查詢結果：最多 6 個候選標題供使用者選擇
type QueryResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// FilterRequest 口味／飲食屬性過濾請求
type FilterRequest struct {
	Query      string `json:"query" binding:"required"`
	Preference string `json:"preference"` // vegetarian | non-vegetarian | both
}

// Handler 食譜處理程序
type Handler struct {
	catalog       *catalog.Catalog
	searchService *search.Service
}

// NewHandler 創建新的食譜處理程序
func NewHandler(cat *catalog.Catalog, searchService *search.Service) *Handler {
	return &Handler{
		catalog:       cat,
		searchService: searchService,
	}
}

// HandleQuery 解析自由輸入，回傳候選食譜標題
func (h *Handler) HandleQuery(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// 空查詢與查無結果一視同仁，都回空清單
	suggestions := h.searchService.Resolve(c.Request.Context(), req.Query)

	common.LogInfo("食譜查詢完成",
		zap.String("request_id", requestID),
		zap.Int("候選數", len(suggestions)),
	)

	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, QueryResponse{
		Query:       req.Query,
		Suggestions: suggestions,
	})
}

// HandleList 回傳全部食譜標題（目錄順序）
func (h *Handler) HandleList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"titles": h.catalog.Titles(),
	})
}

// HandleGet 依標題取得完整食譜
func (h *Handler) HandleGet(c *gin.Context) {
	title := c.Param("title")

	entry, ok := h.catalog.Lookup(title)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Recipe not found",
			"code":  common.ErrRecipeNotFound.Code,
		})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// HandleFilter 口味關鍵字 + 飲食屬性過濾，回傳完整食譜
func (h *Handler) HandleFilter(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	preference := strings.ToLower(strings.TrimSpace(req.Preference))
	if preference == "" {
		preference = catalog.PreferenceBoth
	}
	if preference != catalog.DietVegetarian &&
		preference != catalog.DietNonVegetarian &&
		preference != catalog.PreferenceBoth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid diet preference"})
		return
	}

	words := strings.Fields(strings.ToLower(strings.TrimSpace(req.Query)))
	matched := h.catalog.FilterByTags(words, preference)

	common.LogInfo("食譜過濾完成",
		zap.String("request_id", requestID),
		zap.String("preference", preference),
		zap.Int("命中數", len(matched)),
	)

	if matched == nil {
		matched = []catalog.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{
		"recipes": matched,
	})
}
