package medical

import (
	"fmt"
	"net/http"

	"nutrimed/internal/core/catalog"
	"nutrimed/internal/core/pdfexport"
	"nutrimed/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QueryRequest 疾病名稱查詢請求（支援部分比對）
type QueryRequest struct {
	Query string `json:"query"`
}

// Handler 疾病資料處理程序
type Handler struct {
	index *catalog.MedicalIndex
}

// NewHandler 創建新的疾病資料處理程序
func NewHandler(index *catalog.MedicalIndex) *Handler {
	return &Handler{
		index: index,
	}
}

// HandleList 回傳排序後的全部疾病名稱
func (h *Handler) HandleList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"diseases": h.index.Names(),
	})
}

// HandleQuery 名稱部分比對查詢
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

	matches := h.index.Filter(req.Query)

	common.LogInfo("疾病查詢完成",
		zap.String("request_id", requestID),
		zap.Int("命中數", len(matches)),
	)

	if matches == nil {
		matches = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"query":   req.Query,
		"matches": matches,
	})
}

// HandleGet 依名稱取得疾病資料
func (h *Handler) HandleGet(c *gin.Context) {
	name := c.Param("name")

	d, ok := h.index.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Disease not found",
			"code":  common.ErrDiseaseNotFound.Code,
		})
		return
	}

	c.JSON(http.StatusOK, d)
}

// HandlePDF 下載單一疾病資訊 PDF
func (h *Handler) HandlePDF(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	name := c.Param("name")
	d, ok := h.index.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Disease not found",
			"code":  common.ErrDiseaseNotFound.Code,
		})
		return
	}

	data, err := pdfexport.DiseaseInfoPDF(d)
	if err != nil {
		common.LogError("疾病 PDF 產生失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("disease", d.Name),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF generation failed"})
		return
	}

	common.LogInfo("疾病 PDF 產生成功",
		zap.String("request_id", requestID),
		zap.String("disease", d.Name),
	)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Name+"_info.pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}
