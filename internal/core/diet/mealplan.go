package diet

import (
	"fmt"
	"math/rand"

	"nutrimed/internal/core/catalog"
)

// mealSlots 餐次固定順序
var mealSlots = []string{"Breakfast", "Lunch", "Snack", "Dinner"}

// mealOption 候選菜色
type mealOption struct {
	dish     string
	calories int
}

// mealTables 靜態菜單：每餐次 3 個選項，依飲食屬性分組
var mealTables = map[string]map[string][]mealOption{
	catalog.DietVegetarian: {
		"Breakfast": {
			{"Oats + banana", 350},
			{"Poha", 300},
			{"Paneer paratha", 400},
		},
		"Lunch": {
			{"Brown rice + dal", 500},
			{"Chapati + paneer curry", 550},
			{"Quinoa + veg curry", 480},
		},
		"Snack": {
			{"Apple + almonds", 200},
			{"Smoothie", 250},
			{"Roasted chickpeas", 220},
		},
		"Dinner": {
			{"Khichdi + salad", 400},
			{"Tofu curry + rice", 450},
			{"Moong dal cheela", 380},
		},
	},
	catalog.DietNonVegetarian: {
		"Breakfast": {
			{"Boiled eggs + toast", 350},
			{"Oats + milk + egg", 370},
			{"Chicken sandwich", 400},
		},
		"Lunch": {
			{"Grilled chicken + rice", 600},
			{"Fish curry + chapati", 550},
			{"Egg curry + quinoa", 520},
		},
		"Snack": {
			{"Greek yogurt + berries", 250},
			{"Protein shake", 300},
			{"Boiled egg + apple", 220},
		},
		"Dinner": {
			{"Grilled fish + salad", 450},
			{"Chicken curry + rice", 550},
			{"Omelette + veggies", 400},
		},
	},
}

// routineTables 每種目標的每日作息建議，一週 7 天相同
var routineTables = map[string][]string{
	GoalWeightLoss:  {"30-min walk", "3L water", "Sleep 7-8 hrs", "Meditation 15 min"},
	GoalWeightGain:  {"Strength training", "High-protein snacks", "Hydration 3L", "Sleep 8 hrs"},
	GoalMaintenance: {"Balanced workout", "2.5L water", "Sleep 7-8 hrs", "Stretch"},
}

// Meal 單一餐次的選擇
type Meal struct {
	Slot     string `json:"meal"`
	Dish     string `json:"dish"`
	Calories int    `json:"calories"`
}

// DayPlan 單日計畫
type DayPlan struct {
	Day           string   `json:"day"`
	Meals         []Meal   `json:"meals"`
	Routine       []string `json:"routine"`
	TotalCalories int      `json:"total_calories"`
}

// WeeklyPlan 一週飲食與作息計畫
type WeeklyPlan struct {
	Calories int       `json:"calories"` // 每日熱量需求
	BMI      BMIResult `json:"bmi"`
	Days     []DayPlan `json:"days"`
}

// GenerateMealPlan 依飲食屬性為每個餐次均勻隨機挑一道菜
// rng 由呼叫端注入，測試時可固定種子
func GenerateMealPlan(preference string, rng *rand.Rand) ([]Meal, int, error) {
	table, ok := mealTables[preference]
	if !ok {
		return nil, 0, fmt.Errorf("unknown diet preference %q", preference)
	}

	meals := make([]Meal, 0, len(mealSlots))
	total := 0
	for _, slot := range mealSlots {
		opts := table[slot]
		pick := opts[rng.Intn(len(opts))]
		meals = append(meals, Meal{
			Slot:     slot,
			Dish:     pick.dish,
			Calories: pick.calories,
		})
		total += pick.calories
	}
	return meals, total, nil
}

// WeeklyRoutine 依目標回傳 7 天作息；未知目標退回 maintenance
func WeeklyRoutine(goal string) [][]string {
	routine, ok := routineTables[goal]
	if !ok {
		routine = routineTables[GoalMaintenance]
	}
	days := make([][]string, 7)
	for i := range days {
		days[i] = routine
	}
	return days
}

// GenerateWeeklyPlan 組合熱量估算、BMI 與 7 天餐飲／作息計畫
func GenerateWeeklyPlan(p Profile, rng *rand.Rand) (*WeeklyPlan, error) {
	routines := WeeklyRoutine(p.Goal)

	plan := &WeeklyPlan{
		Calories: CalculateCalories(p),
		BMI:      CalculateBMI(p.Weight, p.Height),
		Days:     make([]DayPlan, 0, 7),
	}

	for day := 1; day <= 7; day++ {
		meals, total, err := GenerateMealPlan(p.Preference, rng)
		if err != nil {
			return nil, err
		}
		plan.Days = append(plan.Days, DayPlan{
			Day:           fmt.Sprintf("Day %d", day),
			Meals:         meals,
			Routine:       routines[day-1],
			TotalCalories: total,
		})
	}

	return plan, nil
}
