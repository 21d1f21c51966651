package diet

import (
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"nutrimed/internal/core/catalog"
	coreDiet "nutrimed/internal/core/diet"
	"nutrimed/internal/core/pdfexport"
	"nutrimed/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlanRequest 週計畫產生請求
type PlanRequest struct {
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	Weight        float64 `json:"weight" binding:"required"` // kg
	Height        float64 `json:"height" binding:"required"` // cm
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	Preference    string  `json:"preference" binding:"required"`
}

// Handler 飲食計畫處理程序
// rng 由 mu 保護：gin 會並發執行 handler，rand.Rand 本身不是並發安全的
type Handler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewHandler 創建新的飲食計畫處理程序
func NewHandler() *Handler {
	return &Handler{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// HandlePlan 產生一週飲食與作息計畫
func (h *Handler) HandlePlan(c *gin.Context) {
	plan, ok := h.generatePlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

// HandlePlanPDF 產生一週計畫並以 PDF 下載
func (h *Handler) HandlePlanPDF(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")

	plan, ok := h.generatePlan(c)
	if !ok {
		return
	}

	data, err := pdfexport.WeeklyPlanPDF(plan)
	if err != nil {
		common.LogError("週計畫 PDF 產生失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF generation failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="weekly_diet_plan.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// generatePlan 驗證輸入並產生計畫；驗證失敗時已寫入響應
func (h *Handler) generatePlan(c *gin.Context) (*coreDiet.WeeklyPlan, bool) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return nil, false
	}

	profile := coreDiet.Profile{
		Age:           req.Age,
		Gender:        strings.ToLower(strings.TrimSpace(req.Gender)),
		Weight:        req.Weight,
		Height:        req.Height,
		ActivityLevel: strings.ToLower(strings.TrimSpace(req.ActivityLevel)),
		Goal:          strings.ToLower(strings.TrimSpace(req.Goal)),
		Preference:    strings.ToLower(strings.TrimSpace(req.Preference)),
	}

	if msg, ok := validateProfile(profile); !ok {
		common.LogWarn("計畫輸入驗證失敗",
			zap.String("request_id", requestID),
			zap.String("原因", msg),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return nil, false
	}

	h.mu.Lock()
	plan, err := coreDiet.GenerateWeeklyPlan(profile, h.rng)
	h.mu.Unlock()
	if err != nil {
		common.LogError("週計畫產生失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Plan generation failed"})
		return nil, false
	}

	common.LogInfo("週計畫產生成功",
		zap.String("request_id", requestID),
		zap.Int("每日熱量", plan.Calories),
		zap.Float64("bmi", plan.BMI.Value),
	)

	return plan, true
}

// validateProfile 檢查輸入範圍（沿用前端表單的上下限）
func validateProfile(p coreDiet.Profile) (string, bool) {
	if p.Age < 10 || p.Age > 100 {
		return "age must be between 10 and 100", false
	}
	if p.Gender != coreDiet.GenderMale && p.Gender != coreDiet.GenderFemale {
		return "gender must be male or female", false
	}
	if p.Weight < 30 || p.Weight > 200 {
		return "weight must be between 30 and 200 kg", false
	}
	if p.Height < 100 || p.Height > 220 {
		return "height must be between 100 and 220 cm", false
	}
	if p.Preference != catalog.DietVegetarian && p.Preference != catalog.DietNonVegetarian {
		return "preference must be vegetarian or non-vegetarian", false
	}
	return "", true
}
