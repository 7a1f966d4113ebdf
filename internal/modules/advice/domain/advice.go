package domain

import (
	"fmt"
	"math"
	"strconv"

	intake "haverfit/internal/modules/intake/domain"
	nutrition "haverfit/internal/modules/nutrition/domain"
)

type Direction int

const (
	OnTarget Direction = iota
	Excess
	Deficit
)

func DirectionOf(deviation float64) Direction {
	switch {
	case deviation > 0:
		return Excess
	case deviation < 0:
		return Deficit
	default:
		return OnTarget
	}
}

func (d Direction) String() string {
	switch d {
	case Excess:
		return "excess"
	case Deficit:
		return "deficit"
	default:
		return "on-target"
	}
}

// Advice is the recommendation for one nutrient. Amount is the magnitude of
// the deviation. Food names the consumed food richest in the nutrient.
type Advice struct {
	Nutrient   nutrition.Nutrient
	Direction  Direction
	Amount     float64
	Food       string
	FoodAmount float64
}

// Build returns one advice per nutrient in report order.
func Build(deviation nutrition.Deviation, peaks intake.Peaks) []Advice {
	out := make([]Advice, 0, len(nutrition.AllNutrients()))
	for _, n := range nutrition.AllNutrients() {
		value := deviation.Of(n)
		peak := peaks[n]
		out = append(out, Advice{
			Nutrient:   n,
			Direction:  DirectionOf(value),
			Amount:     math.Abs(value),
			Food:       peak.Name,
			FoodAmount: peak.Amount,
		})
	}
	return out
}

// Message renders the advice as console text. Excess and deficit advice
// spans two lines when a consumed food contains the nutrient.
func (a Advice) Message() string {
	category := a.Nutrient.String()
	unit := a.Nutrient.Unit()
	if a.Direction == OnTarget {
		return fmt.Sprintf("Congratulations! You are consuming the right amount of %ss!", category)
	}
	comparison, action := "more", "reducing"
	if a.Direction == Deficit {
		comparison, action = "less", "increasing"
	}
	msg := fmt.Sprintf("You are consuming %s %s of %ss %s than you should.", formatAmount(a.Amount), unit, category, comparison)
	if a.Food == "" {
		return msg + fmt.Sprintf("\nNone of the food that you consume daily contains any %s.", category)
	}
	return msg + fmt.Sprintf(
		"\nOut of all the food that you consume daily, %s has/have the highest %s content with %s %s of %ss per serving. You should consider %s the consumption of %s.",
		a.Food, category, formatAmount(a.FoodAmount), unit, category, action, a.Food,
	)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
