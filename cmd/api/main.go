package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrimed/internal/api"
	"nutrimed/internal/core/cache"
	"nutrimed/internal/core/catalog"
	"nutrimed/internal/infrastructure/config"
	"nutrimed/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("recipes_path", cfg.Catalog.RecipesPath),
		zap.String("medical_path", cfg.Catalog.MedicalPath),
		zap.String("remote_url", cfg.Catalog.RemoteURL),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	// 載入資料目錄
	loader := catalog.NewLoader(cfg.Catalog)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer loadCancel()

	recipes, err := loader.LoadRecipes(loadCtx)
	if err != nil {
		common.LogFatal("Failed to load recipe catalog", zap.Error(err))
	}

	diseases, err := loader.LoadMedical(loadCtx)
	if err != nil {
		common.LogFatal("Failed to load medical catalog", zap.Error(err))
	}

	// 初始化快取
	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
		common.LogFatal("Failed to initialize cache store", zap.Error(err))
	}
	if store != nil {
		defer store.Close()
	}

	// 設置路由
	router, err := api.SetupRouter(cfg, recipes, diseases, store)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
