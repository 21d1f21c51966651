package diet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCalories(t *testing.T) {
	male := Profile{
		Age: 25, Gender: GenderMale, Weight: 70, Height: 175,
		ActivityLevel: "sedentary", Goal: GoalMaintenance,
	}
	female := Profile{
		Age: 30, Gender: GenderFemale, Weight: 60, Height: 165,
		ActivityLevel: "moderate", Goal: GoalMaintenance,
	}

	tests := []struct {
		name    string
		profile Profile
		want    int
	}{
		// BMR 1724.052 * 1.2 = 2068.86
		{"male maintenance", male, 2069},
		// BMR 1383.683 * 1.55 = 2144.71
		{"female maintenance", female, 2145},
		{"weight loss subtracts 500", withGoal(male, GoalWeightLoss), 1569},
		{"weight gain adds 500", withGoal(male, GoalWeightGain), 2569},
		{"unknown activity falls back to sedentary", withActivity(male, "couch"), 2069},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateCalories(tt.profile))
		})
	}
}

func withGoal(p Profile, goal string) Profile {
	p.Goal = goal
	return p
}

func withActivity(p Profile, level string) Profile {
	p.ActivityLevel = level
	return p
}

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name         string
		weight       float64
		height       float64
		wantValue    float64
		wantCategory string
	}{
		{"underweight", 50, 175, 16.3, "Underweight"},
		{"normal", 70, 175, 22.9, "Normal weight"},
		{"overweight", 85, 170, 29.4, "Overweight"},
		{"obese", 100, 170, 34.6, "Obese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBMI(tt.weight, tt.height)
			assert.InDelta(t, tt.wantValue, got.Value, 1e-9)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.NotEmpty(t, got.Advice)
		})
	}
}
