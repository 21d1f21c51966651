package catalog

import (
	"fmt"
	"strings"

	"nutrimed/internal/pkg/common"
)

// Catalog 食譜目錄，啟動時建立一次，之後唯讀
type Catalog struct {
	entries     []Recipe
	titles      []string
	titlesLower []string
	byTitle     map[string]int // 小寫標題 -> entries 索引
}

// NewCatalog 建立食譜目錄並驗證每筆記錄
// 標題唯一性依照資料來源假設，不在此強制；重複標題以先出現者為準
func NewCatalog(entries []Recipe) (*Catalog, error) {
	c := &Catalog{
		entries:     entries,
		titles:      make([]string, len(entries)),
		titlesLower: make([]string, len(entries)),
		byTitle:     make(map[string]int, len(entries)),
	}

	for i, r := range entries {
		if err := validateRecipe(r); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		lower := strings.ToLower(r.Title)
		c.titles[i] = r.Title
		c.titlesLower[i] = lower
		if _, exists := c.byTitle[lower]; !exists {
			c.byTitle[lower] = i
		}
	}

	return c, nil
}

// validateRecipe 檢查必要欄位（image 為選填）
func validateRecipe(r Recipe) error {
	if strings.TrimSpace(r.Title) == "" {
		return common.NewValidationError("missing title")
	}
	if strings.TrimSpace(r.Description) == "" {
		return common.NewValidationError("missing description")
	}
	if len(r.Ingredients) == 0 {
		return common.NewValidationError("missing ingredients")
	}
	if len(r.Steps) == 0 {
		return common.NewValidationError("missing steps")
	}
	if r.Diet != DietVegetarian && r.Diet != DietNonVegetarian {
		return common.NewValidationError(fmt.Sprintf("invalid diet %q", r.Diet))
	}
	return nil
}

// Len 食譜數量
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries 依載入順序回傳全部食譜
func (c *Catalog) Entries() []Recipe {
	return c.entries
}

// Titles 依載入順序回傳標題（原始大小寫）
func (c *Catalog) Titles() []string {
	return c.titles
}

// TitlesLower 依載入順序回傳小寫標題
func (c *Catalog) TitlesLower() []string {
	return c.titlesLower
}

// Lookup 依標題取得食譜（不分大小寫）
func (c *Catalog) Lookup(title string) (Recipe, bool) {
	i, ok := c.byTitle[strings.ToLower(title)]
	if !ok {
		return Recipe{}, false
	}
	return c.entries[i], true
}

// FilterByTags 標籤／飲食屬性過濾（聊天機器人的口味查詢路徑）
// words 中任一字恰好是食譜標籤之一即視為命中；preference 為 both 時不限飲食屬性
func (c *Catalog) FilterByTags(words []string, preference string) []Recipe {
	var matched []Recipe
	for _, r := range c.entries {
		if !tagMatch(r.Tags, words) {
			continue
		}
		if preference != PreferenceBoth && r.Diet != preference {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

func tagMatch(tags, words []string) bool {
	for _, w := range words {
		for _, t := range tags {
			if w == t {
				return true
			}
		}
	}
	return false
}
