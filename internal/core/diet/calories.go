package diet

import (
	"math"
)

// 性別
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// 目標
const (
	GoalWeightLoss  = "weight_loss"
	GoalWeightGain  = "weight_gain"
	GoalMaintenance = "maintenance"
)

// activityFactors 活動量係數；未知活動量視同 sedentary
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very active": 1.9,
}

// Profile 使用者輸入
type Profile struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Weight        float64 `json:"weight"` // kg
	Height        float64 `json:"height"` // cm
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
	Preference    string  `json:"preference"` // vegetarian | non-vegetarian
}

// CalculateCalories 以 Harris-Benedict 公式估算每日熱量需求
// 減重 -500 kcal、增重 +500 kcal，結果四捨五入到整數
func CalculateCalories(p Profile) int {
	var bmr float64
	if p.Gender == GenderMale {
		bmr = 88.362 + 13.397*p.Weight + 4.799*p.Height - 5.677*float64(p.Age)
	} else {
		bmr = 447.593 + 9.247*p.Weight + 3.098*p.Height - 4.330*float64(p.Age)
	}

	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = 1.2
	}
	calories := bmr * factor

	switch p.Goal {
	case GoalWeightLoss:
		calories -= 500
	case GoalWeightGain:
		calories += 500
	}

	return int(math.Round(calories))
}

// BMIResult BMI 計算結果
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Advice   string  `json:"advice"`
}

// CalculateBMI 計算 BMI（保留一位小數）並分類
func CalculateBMI(weight, heightCm float64) BMIResult {
	h := heightCm / 100
	bmi := math.Round(weight/(h*h)*10) / 10

	var category, advice string
	switch {
	case bmi < 18.5:
		category = "Underweight"
		advice = "You are underweight. Increase calories."
	case bmi < 25:
		category = "Normal weight"
		advice = "Healthy weight!"
	case bmi < 30:
		category = "Overweight"
		advice = "Overweight. Moderate diet & exercise."
	default:
		category = "Obese"
		advice = "Obese. Consult a professional."
	}

	return BMIResult{
		Value:    bmi,
		Category: category,
		Advice:   advice,
	}
}
