package catalog

// 飲食屬性
const (
	DietVegetarian    = "vegetarian"
	DietNonVegetarian = "non-vegetarian"

	// PreferenceBoth 過濾時不限制飲食屬性
	PreferenceBoth = "both"
)

// Recipe 食譜記錄，載入後不再修改
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Diet        string   `json:"diet"`
	Tags        []string `json:"tags,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// Disease 疾病記錄；medical.json 內以名稱為鍵
type Disease struct {
	Name       string   `json:"name,omitempty"`
	Definition string   `json:"definition"`
	Symptoms   []string `json:"symptoms"`
	Treatment  []string `json:"treatment"`
	Prevention []string `json:"prevention"`
	Image      string   `json:"image,omitempty"`
}
