package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecipe(title, diet string, tags ...string) Recipe {
	return Recipe{
		Title:       title,
		Description: "test description",
		Ingredients: []string{"ingredient"},
		Steps:       []string{"step"},
		Diet:        diet,
		Tags:        tags,
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr string
	}{
		{
			name:    "missing title",
			recipe:  Recipe{Description: "d", Ingredients: []string{"i"}, Steps: []string{"s"}, Diet: DietVegetarian},
			wantErr: "missing title",
		},
		{
			name:    "missing description",
			recipe:  Recipe{Title: "T", Ingredients: []string{"i"}, Steps: []string{"s"}, Diet: DietVegetarian},
			wantErr: "missing description",
		},
		{
			name:    "missing ingredients",
			recipe:  Recipe{Title: "T", Description: "d", Steps: []string{"s"}, Diet: DietVegetarian},
			wantErr: "missing ingredients",
		},
		{
			name:    "missing steps",
			recipe:  Recipe{Title: "T", Description: "d", Ingredients: []string{"i"}, Diet: DietVegetarian},
			wantErr: "missing steps",
		},
		{
			name:    "invalid diet",
			recipe:  Recipe{Title: "T", Description: "d", Ingredients: []string{"i"}, Steps: []string{"s"}, Diet: "vegan"},
			wantErr: "invalid diet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog([]Recipe{tt.recipe})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogTitlesPreserveOrder(t *testing.T) {
	entries := []Recipe{
		validRecipe("Khichdi", DietVegetarian),
		validRecipe("Chicken Curry", DietNonVegetarian),
		validRecipe("Paneer Tikka", DietVegetarian),
	}
	c, err := NewCatalog(entries)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"Khichdi", "Chicken Curry", "Paneer Tikka"}, c.Titles())
	assert.Equal(t, []string{"khichdi", "chicken curry", "paneer tikka"}, c.TitlesLower())
}

func TestCatalogLookup(t *testing.T) {
	c, err := NewCatalog([]Recipe{validRecipe("Paneer Tikka", DietVegetarian)})
	require.NoError(t, err)

	r, ok := c.Lookup("paneer tikka")
	require.True(t, ok)
	assert.Equal(t, "Paneer Tikka", r.Title)

	r, ok = c.Lookup("PANEER TIKKA")
	require.True(t, ok)
	assert.Equal(t, "Paneer Tikka", r.Title)

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestCatalogLookupDuplicateTitleKeepsFirst(t *testing.T) {
	first := validRecipe("Khichdi", DietVegetarian)
	first.Description = "first"
	second := validRecipe("khichdi", DietVegetarian)
	second.Description = "second"

	c, err := NewCatalog([]Recipe{first, second})
	require.NoError(t, err)

	r, ok := c.Lookup("Khichdi")
	require.True(t, ok)
	assert.Equal(t, "first", r.Description)
}

func TestFilterByTags(t *testing.T) {
	c, err := NewCatalog([]Recipe{
		validRecipe("Paneer Tikka", DietVegetarian, "spicy", "savory"),
		validRecipe("Chicken Curry", DietNonVegetarian, "spicy", "savory"),
		validRecipe("Gulab Jamun", DietVegetarian, "sweet"),
		validRecipe("Oats Upma", DietVegetarian, "healthy", "savory"),
	})
	require.NoError(t, err)

	titlesOf := func(rs []Recipe) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Title)
		}
		return out
	}

	tests := []struct {
		name       string
		words      []string
		preference string
		want       []string
	}{
		{"spicy both", []string{"spicy"}, PreferenceBoth, []string{"Paneer Tikka", "Chicken Curry"}},
		{"spicy vegetarian only", []string{"spicy"}, DietVegetarian, []string{"Paneer Tikka"}},
		{"spicy non-vegetarian only", []string{"spicy"}, DietNonVegetarian, []string{"Chicken Curry"}},
		{"multiple words", []string{"sweet", "healthy"}, PreferenceBoth, []string{"Gulab Jamun", "Oats Upma"}},
		{"exact tag match only", []string{"spic"}, PreferenceBoth, nil},
		{"no tag match", []string{"sour"}, PreferenceBoth, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.FilterByTags(tt.words, tt.preference)
			assert.Equal(t, tt.want, titlesOf(got))
		})
	}
}
