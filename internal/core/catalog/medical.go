package catalog

import (
	"sort"
	"strings"

	"nutrimed/internal/pkg/common"
)

// MedicalIndex 疾病資料索引，名稱排序後唯讀
type MedicalIndex struct {
	names  []string
	byName map[string]Disease // 小寫名稱 -> 記錄
}

// NewMedicalIndex 建立疾病索引並驗證每筆記錄
func NewMedicalIndex(records map[string]Disease) (*MedicalIndex, error) {
	m := &MedicalIndex{
		names:  make([]string, 0, len(records)),
		byName: make(map[string]Disease, len(records)),
	}

	for name, d := range records {
		if strings.TrimSpace(name) == "" {
			return nil, common.NewValidationError("missing disease name")
		}
		if strings.TrimSpace(d.Definition) == "" {
			return nil, common.NewValidationError("disease " + name + ": missing definition")
		}
		d.Name = name
		m.names = append(m.names, name)
		m.byName[strings.ToLower(name)] = d
	}

	// 瀏覽時以名稱排序呈現
	sort.Strings(m.names)

	return m, nil
}

// Len 疾病數量
func (m *MedicalIndex) Len() int {
	return len(m.names)
}

// Names 回傳排序後的疾病名稱
func (m *MedicalIndex) Names() []string {
	return m.names
}

// Lookup 依名稱取得疾病資料（不分大小寫）
func (m *MedicalIndex) Lookup(name string) (Disease, bool) {
	d, ok := m.byName[strings.ToLower(name)]
	return d, ok
}

// Filter 名稱部分比對：查詢字串（小寫後）出現在名稱中即命中
func (m *MedicalIndex) Filter(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var matched []string
	for _, name := range m.names {
		if strings.Contains(strings.ToLower(name), q) {
			matched = append(matched, name)
		}
	}
	return matched
}
