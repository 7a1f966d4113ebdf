package dto

type ExerciseOutput struct {
	Label string
	Name  string
}

type PlanInput struct {
	Label          int     `validate:"gt=0"`
	WeightLb       float64 `validate:"gt=0"`
	ExcessCalories float64 `validate:"gt=0"`
}

// PlanOutput tells how long the chosen exercise must be done to burn the
// excess calories.
type PlanOutput struct {
	Name        string
	Bracket     int
	KcalPerHour float64
	Minutes     int
}
