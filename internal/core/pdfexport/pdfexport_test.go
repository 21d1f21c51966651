package pdfexport

import (
	"math/rand"
	"testing"

	"nutrimed/internal/core/catalog"
	"nutrimed/internal/core/diet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyPlanPDF(t *testing.T) {
	p := diet.Profile{
		Age: 25, Gender: diet.GenderMale, Weight: 70, Height: 175,
		ActivityLevel: "sedentary", Goal: diet.GoalMaintenance,
		Preference: catalog.DietVegetarian,
	}
	plan, err := diet.GenerateWeeklyPlan(p, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	data, err := WeeklyPlanPDF(plan)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestDiseaseInfoPDF(t *testing.T) {
	d := catalog.Disease{
		Name:       "Diabetes",
		Definition: "A chronic metabolic disease marked by elevated blood glucose.",
		Symptoms:   []string{"Frequent urination", "Excessive thirst"},
		Treatment:  []string{"Blood sugar monitoring"},
		Prevention: []string{"Maintain a healthy weight"},
	}

	data, err := DiseaseInfoPDF(d)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestDiseaseInfoPDFSparseRecord(t *testing.T) {
	d := catalog.Disease{
		Name:       "Mystery",
		Definition: "Barely documented condition.",
	}

	data, err := DiseaseInfoPDF(d)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
