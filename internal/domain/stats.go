package domain

import (
	"errors"
	"math"
)

// Goals are the daily targets consumption is measured against.
type Goals struct {
	Calories float64 `json:"caloriesGoal" yaml:"calories"`
	Protein  float64 `json:"proteinGoal" yaml:"protein"`
	Carbs    float64 `json:"carbsGoal" yaml:"carbs"`
	Fat      float64 `json:"fatGoal" yaml:"fat"`
}

// DefaultGoals returns the reference daily goals.
func DefaultGoals() Goals {
	return Goals{Calories: 2200, Protein: 150, Carbs: 250, Fat: 70}
}

// Validate reports whether every goal is a finite non-negative number.
func (g Goals) Validate() error {
	for _, v := range []float64{g.Calories, g.Protein, g.Carbs, g.Fat} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("goals must be finite and >= 0")
		}
	}
	return nil
}

// NutritionStats is the consumption summary for one day.
type NutritionStats struct {
	CaloriesEaten float64 `json:"caloriesEaten"`
	CaloriesGoal  float64 `json:"caloriesGoal"`
	CaloriesLeft  float64 `json:"caloriesLeft"`
	Protein       float64 `json:"protein"`
	ProteinGoal   float64 `json:"proteinGoal"`
	Carbs         float64 `json:"carbs"`
	CarbsGoal     float64 `json:"carbsGoal"`
	Fat           float64 `json:"fat"`
	FatGoal       float64 `json:"fatGoal"`
}

// ComputeStats sums entries and relates the totals to goals. CaloriesLeft is
// negative when the calorie goal has been exceeded.
func ComputeStats(entries []FoodLogEntry, goals Goals) NutritionStats {
	var s NutritionStats
	for _, e := range entries {
		s.CaloriesEaten += e.Calories
		s.Protein += e.Protein
		s.Carbs += e.Carbs
		s.Fat += e.Fat
	}
	s.CaloriesGoal = goals.Calories
	s.ProteinGoal = goals.Protein
	s.CarbsGoal = goals.Carbs
	s.FatGoal = goals.Fat
	s.CaloriesLeft = goals.Calories - s.CaloriesEaten
	return s
}

// Progress returns consumed as a percentage of goal, clamped to [0, 100].
func Progress(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Max(0, math.Min(consumed/goal*100, 100))
}

// Ring is one progress ring on the dashboard.
type Ring struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Rings returns the progress rings ordered from innermost to outermost.
func (s NutritionStats) Rings() []Ring {
	return []Ring{
		{Name: "Fat", Value: Progress(s.Fat, s.FatGoal)},
		{Name: "Protein", Value: Progress(s.Protein, s.ProteinGoal)},
		{Name: "Carbs", Value: Progress(s.Carbs, s.CarbsGoal)},
		{Name: "Calories", Value: Progress(s.CaloriesEaten, s.CaloriesGoal)},
	}
}
