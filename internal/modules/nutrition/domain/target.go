package domain

const (
	kcalPerGramCarb    = 4
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
)

// Band is an inclusive [Min, Max] range in grams.
type Band struct {
	Min float64
	Max float64
}

type Target struct {
	Calories float64
	Carb     Band
	Protein  Band
	Fat      Band
}

// TargetFor splits a daily calorie goal into macronutrient bands: carbs
// 45-65%, protein 10-35%, fat 20-35% of calories.
func TargetFor(calories float64) Target {
	return Target{
		Calories: calories,
		Carb:     Band{Min: calories * 0.45 / kcalPerGramCarb, Max: calories * 0.65 / kcalPerGramCarb},
		Protein:  Band{Min: calories * 0.10 / kcalPerGramProtein, Max: calories * 0.35 / kcalPerGramProtein},
		Fat:      Band{Min: calories * 0.20 / kcalPerGramFat, Max: calories * 0.35 / kcalPerGramFat},
	}
}
