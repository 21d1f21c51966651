package catalog

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"nutrimed/internal/infrastructure/config"
	"nutrimed/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Loader 目錄載入器：本地 JSON 檔或遠端 URL 擇一
type Loader struct {
	cfg    config.CatalogConfig
	client *resty.Client
}

// NewLoader 創建目錄載入器
func NewLoader(cfg config.CatalogConfig) *Loader {
	l := &Loader{cfg: cfg}
	if cfg.RemoteURL != "" {
		l.client = resty.New().
			SetBaseURL(strings.TrimRight(cfg.RemoteURL, "/")).
			SetTimeout(cfg.FetchTimeout).
			SetHeader("Accept", "application/json")
	}
	return l
}

// LoadRecipes 載入食譜目錄
func (l *Loader) LoadRecipes(ctx context.Context) (*Catalog, error) {
	data, err := l.fetch(ctx, "recipes.json", l.cfg.RecipesPath)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	var entries []Recipe
	if err := common.ParseJSONBytes(data, &entries); err != nil {
		return nil, fmt.Errorf("parse recipes: %w", err)
	}

	c, err := NewCatalog(entries)
	if err != nil {
		return nil, fmt.Errorf("validate recipes: %w", err)
	}

	common.LogInfo("食譜目錄已載入",
		zap.Int("筆數", c.Len()),
	)
	return c, nil
}

// LoadMedical 載入疾病資料
func (l *Loader) LoadMedical(ctx context.Context) (*MedicalIndex, error) {
	data, err := l.fetch(ctx, "medical.json", l.cfg.MedicalPath)
	if err != nil {
		return nil, fmt.Errorf("load medical: %w", err)
	}

	var records map[string]Disease
	if err := common.ParseJSONBytes(data, &records); err != nil {
		return nil, fmt.Errorf("parse medical: %w", err)
	}

	m, err := NewMedicalIndex(records)
	if err != nil {
		return nil, fmt.Errorf("validate medical: %w", err)
	}

	common.LogInfo("疾病資料已載入",
		zap.Int("筆數", m.Len()),
	)
	return m, nil
}

// fetch 依設定從遠端或本地讀取原始資料
func (l *Loader) fetch(ctx context.Context, remoteName, localPath string) ([]byte, error) {
	if l.client != nil {
		resp, err := l.client.R().
			SetContext(ctx).
			Get("/" + remoteName)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", remoteName, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status %d", remoteName, resp.StatusCode())
		}
		return resp.Body(), nil
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", localPath, err)
	}
	return data, nil
}
