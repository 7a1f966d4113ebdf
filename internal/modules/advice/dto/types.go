package dto

import (
	intakedto "haverfit/internal/modules/intake/dto"
	nutritiondto "haverfit/internal/modules/nutrition/dto"
)

type AdviseInput struct {
	Deviation nutritiondto.DeviationOutput
	Peaks     []intakedto.PeakOutput
}

type AdviceOutput struct {
	Nutrient   string
	Direction  string
	Amount     float64
	Unit       string
	Food       string
	FoodAmount float64
	Message    string
}

// AdviseOutput carries ExcessCalories above zero when exercise advice
// applies.
type AdviseOutput struct {
	Items          []AdviceOutput
	ExcessCalories float64
}
