package api

import (
	"context"
	"net/http"
	"time"

	dietHandler "nutrimed/internal/api/handlers/diet"
	"nutrimed/internal/api/handlers/health"
	medicalHandler "nutrimed/internal/api/handlers/medical"
	recipeHandler "nutrimed/internal/api/handlers/recipe"
	"nutrimed/internal/api/middleware"
	"nutrimed/internal/core/cache"
	"nutrimed/internal/core/catalog"
	"nutrimed/internal/core/search"
	"nutrimed/internal/infrastructure/config"
	"nutrimed/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, recipes *catalog.Catalog, diseases *catalog.MedicalIndex, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// POST 去重
	router.Use(middleware.Deduplication(cfg.DedupWindow))

	// 初始化查詢服務
	recipeResolver := search.NewResolver(recipes.Titles(), cfg.Search)
	recipeSearch := search.NewService(recipeResolver, store, "recipes")

	common.LogInfo("Search services initialized",
		zap.Int("recipes", recipes.Len()),
		zap.Int("diseases", diseases.Len()),
		zap.Int("max_results", cfg.Search.MaxResults),
		zap.Float64("fuzzy_cutoff", cfg.Search.FuzzyCutoff),
	)

	catalogStatus := &health.CatalogStatus{
		Recipes:  recipes.Len(),
		Diseases: diseases.Len(),
	}

	// 全局中間件：設置超時和共享狀態
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("catalog_status", catalogStatus)

		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipeH := recipeHandler.NewHandler(recipes, recipeSearch)
		medicalH := medicalHandler.NewHandler(diseases)
		dietH := dietHandler.NewHandler()

		// 食譜相關路由
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", recipeH.HandleList)
			recipeGroup.POST("/query", recipeH.HandleQuery)
			recipeGroup.POST("/filter", recipeH.HandleFilter)
			recipeGroup.GET("/:title", recipeH.HandleGet)
		}

		// 疾病相關路由
		diseaseGroup := api.Group("/diseases")
		{
			diseaseGroup.GET("", medicalH.HandleList)
			diseaseGroup.POST("/query", medicalH.HandleQuery)
			diseaseGroup.GET("/:name", medicalH.HandleGet)
			diseaseGroup.GET("/:name/pdf", medicalH.HandlePDF)
		}

		// 飲食計劃路由
		planGroup := api.Group("/plan")
		{
			planGroup.POST("", dietH.HandlePlan)
			planGroup.POST("/pdf", dietH.HandlePlanPDF)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
