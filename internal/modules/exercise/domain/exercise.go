package domain

import (
	"fmt"
	"math"

	"haverfit/internal/platform/validate"
)

// Bracket is a reference body weight in pounds for which burn rates are
// tabulated.
type Bracket int

const (
	Bracket125 Bracket = 125
	Bracket155 Bracket = 155
	Bracket185 Bracket = 185
)

// Brackets lists the reference weights in ascending order.
func Brackets() []Bracket {
	return []Bracket{Bracket125, Bracket155, Bracket185}
}

// NearestBracket picks the bracket with the smallest absolute distance to
// weightLb. A tie goes to the lighter bracket.
func NearestBracket(weightLb float64) Bracket {
	best := Bracket125
	bestDiff := math.Inf(1)
	for _, b := range Brackets() {
		if diff := math.Abs(weightLb - float64(b)); diff < bestDiff {
			best, bestDiff = b, diff
		}
	}
	return best
}

// Exercise holds calories burned per hour at each reference weight.
type Exercise struct {
	Label     string  `validate:"required"`
	Name      string  `validate:"required"`
	KcalAt125 float64 `validate:"gte=0"`
	KcalAt155 float64 `validate:"gte=0"`
	KcalAt185 float64 `validate:"gte=0"`
}

func (e Exercise) Validate() error {
	return validate.Struct(e)
}

func (e Exercise) KcalPerHour(b Bracket) float64 {
	switch b {
	case Bracket125:
		return e.KcalAt125
	case Bracket155:
		return e.KcalAt155
	default:
		return e.KcalAt185
	}
}

// MinutesToBurn returns the whole minutes needed to burn excess kcal at
// perHour kcal per hour, rounded down.
func MinutesToBurn(excess, perHour float64) (int, error) {
	if !(perHour > 0) {
		return 0, fmt.Errorf("burn rate must be positive, got %g", perHour)
	}
	return int(math.Floor(60 * (excess / perHour))), nil
}
