package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutrimed/internal/core/catalog"
	"nutrimed/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:     "test",
			Debug:   false,
			Version: "1.0.0",
			Name:    "nutrimed",
		},
		Server: config.ServerConfig{Port: 8080},
		Search: config.SearchConfig{MaxResults: 6, FuzzyCutoff: 0.5},
		RateLimit: config.RateLimitConfig{
			Enabled: false,
		},
		DedupWindow: time.Second,
	}
}

func testRecipeCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewCatalog([]catalog.Recipe{
		{
			Title:       "Paneer Tikka",
			Description: "Grilled marinated paneer.",
			Ingredients: []string{"paneer", "yogurt"},
			Steps:       []string{"Marinate.", "Grill."},
			Diet:        catalog.DietVegetarian,
			Tags:        []string{"spicy", "savory"},
		},
		{
			Title:       "Chicken Curry",
			Description: "Home-style chicken curry.",
			Ingredients: []string{"chicken", "onion"},
			Steps:       []string{"Simmer."},
			Diet:        catalog.DietNonVegetarian,
			Tags:        []string{"spicy"},
		},
		{
			Title:       "Khichdi",
			Description: "Rice and lentil porridge.",
			Ingredients: []string{"rice", "moong dal"},
			Steps:       []string{"Cook."},
			Diet:        catalog.DietVegetarian,
			Tags:        []string{"healthy"},
		},
	})
	require.NoError(t, err)
	return c
}

func testMedicalIndex(t *testing.T) *catalog.MedicalIndex {
	t.Helper()
	m, err := catalog.NewMedicalIndex(map[string]catalog.Disease{
		"Diabetes":     {Definition: "High blood sugar."},
		"Hypertension": {Definition: "High blood pressure."},
	})
	require.NoError(t, err)
	return m
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := SetupRouter(cfg, testRecipeCatalog(t), testMedicalIndex(t), nil)
	require.NoError(t, err)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "1.0.0", resp["version"])

	catalogStatus, ok := resp["catalog"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), catalogStatus["recipes"])
	assert.Equal(t, float64(2), catalogStatus["diseases"])

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/ready", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/live", nil).Code)
}

func TestRecipeQueryEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodPost, "/api/v1/recipes/query", gin.H{"query": "I want tikka"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Query       string   `json:"query"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Paneer Tikka"}, resp.Suggestions)
}

func TestRecipeQueryEmptyInput(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodPost, "/api/v1/recipes/query", gin.H{"query": "   "})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Suggestions)
	assert.Empty(t, resp.Suggestions)
}

func TestRecipeListAndGet(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Khichdi")

	w = doJSON(router, http.MethodGet, "/api/v1/recipes/khichdi", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rice and lentil porridge.")

	w = doJSON(router, http.MethodGet, "/api/v1/recipes/ramen", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RECIPE_NOT_FOUND")
}

func TestRecipeFilterEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodPost, "/api/v1/recipes/filter", gin.H{
		"query":      "spicy",
		"preference": "vegetarian",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []catalog.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Paneer Tikka", resp.Recipes[0].Title)

	// 未帶 preference 時不限飲食屬性
	w = doJSON(router, http.MethodPost, "/api/v1/recipes/filter", gin.H{"query": "spicy food"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recipes, 2)

	w = doJSON(router, http.MethodPost, "/api/v1/recipes/filter", gin.H{
		"query":      "spicy",
		"preference": "carnivore",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiseaseEndpoints(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodGet, "/api/v1/diseases", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Diabetes")

	w = doJSON(router, http.MethodPost, "/api/v1/diseases/query", gin.H{"query": "dia"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Matches []string `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Diabetes"}, resp.Matches)

	w = doJSON(router, http.MethodGet, "/api/v1/diseases/diabetes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "High blood sugar.")

	w = doJSON(router, http.MethodGet, "/api/v1/diseases/plague", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDiseasePDFEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodGet, "/api/v1/diseases/Diabetes/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestPlanEndpoint(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodPost, "/api/v1/plan", gin.H{
		"age":            25,
		"gender":         "male",
		"weight":         70,
		"height":         175,
		"activity_level": "sedentary",
		"goal":           "maintenance",
		"preference":     "vegetarian",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Calories int `json:"calories"`
		BMI      struct {
			Category string `json:"category"`
		} `json:"bmi"`
		Days []struct {
			Day   string `json:"day"`
			Meals []struct {
				Dish string `json:"dish"`
			} `json:"meals"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2069, resp.Calories)
	assert.Equal(t, "Normal weight", resp.BMI.Category)
	require.Len(t, resp.Days, 7)
	assert.Len(t, resp.Days[0].Meals, 4)
}

func TestPlanEndpointValidation(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := doJSON(router, http.MethodPost, "/api/v1/plan", gin.H{
		"age":        5,
		"gender":     "male",
		"weight":     70,
		"height":     175,
		"preference": "vegetarian",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "age must be between 10 and 100")

	w = doJSON(router, http.MethodPost, "/api/v1/plan", gin.H{"age": 25})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeduplicationRejectsRapidRepeat(t *testing.T) {
	router := newTestRouter(t, testConfig())

	body := gin.H{"query": "khichdi please"}
	first := doJSON(router, http.MethodPost, "/api/v1/recipes/query", body)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(router, http.MethodPost, "/api/v1/recipes/query", body)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimitRejectsWhenExhausted(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, Requests: 1, Window: time.Minute}
	router := newTestRouter(t, cfg)

	first := doJSON(router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(router, http.MethodGet, "/api/v1/recipes", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}
