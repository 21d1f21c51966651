package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"nutrimed/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecipesFromFile(t *testing.T) {
	l := NewLoader(config.CatalogConfig{
		RecipesPath: "testdata/recipes.json",
	})

	c, err := l.LoadRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Khichdi", "Chicken Curry"}, c.Titles())
}

func TestLoadRecipesInvalidRecord(t *testing.T) {
	l := NewLoader(config.CatalogConfig{
		RecipesPath: "testdata/recipes_invalid.json",
	})

	_, err := l.LoadRecipes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing steps")
}

func TestLoadRecipesMissingFile(t *testing.T) {
	l := NewLoader(config.CatalogConfig{
		RecipesPath: "testdata/nope.json",
	})

	_, err := l.LoadRecipes(context.Background())
	require.Error(t, err)
}

func TestLoadMedicalFromFile(t *testing.T) {
	l := NewLoader(config.CatalogConfig{
		MedicalPath: "testdata/medical.json",
	})

	m, err := l.LoadMedical(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Anemia", "Diabetes"}, m.Names())

	d, ok := m.Lookup("diabetes")
	require.True(t, ok)
	assert.Equal(t, []string{"Frequent urination", "Excessive thirst"}, d.Symptoms)
}

func TestLoadRecipesFromRemote(t *testing.T) {
	recipes, err := os.ReadFile("testdata/recipes.json")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recipes.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(recipes)
	}))
	defer srv.Close()

	l := NewLoader(config.CatalogConfig{RemoteURL: srv.URL})

	c, err := l.LoadRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestLoadRecipesRemoteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewLoader(config.CatalogConfig{RemoteURL: srv.URL})

	_, err := l.LoadRecipes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
