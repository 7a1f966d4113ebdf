package domain

import (
	"fmt"

	"haverfit/internal/platform/validate"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type UnitSystem string

const (
	Imperial UnitSystem = "imperial"
	Metric   UnitSystem = "metric"
)

// ActivityLevel is the 1-based menu choice for daily activity.
type ActivityLevel int

const (
	Sedentary ActivityLevel = iota + 1
	LightlyActive
	ModeratelyActive
	VeryActive
	ExtraActive
)

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

var activityDescriptions = map[ActivityLevel]string{
	Sedentary:        "Sedentary: little to no exercise, desk job",
	LightlyActive:    "Lightly Active: light exercise/sports 1-3 days/week",
	ModeratelyActive: "Moderately Active: moderate exercise/sports 6-7 days/week",
	VeryActive:       "Very Active: hard exercise every day",
	ExtraActive:      "Extra Active: hard exercise 2 or more times every day",
}

func (a ActivityLevel) Multiplier() (float64, error) {
	m, ok := activityMultipliers[a]
	if !ok {
		return 0, fmt.Errorf("unsupported activity level %d", int(a))
	}
	return m, nil
}

func (a ActivityLevel) Description() string {
	return activityDescriptions[a]
}

// ActivityLevels lists the levels in menu order.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtraActive}
}

const (
	MinPlausibleAge = 10
	MaxPlausibleAge = 100
)

// AgePlausible reports whether age is in the range accepted without a
// confirmation prompt.
func AgePlausible(age int) bool {
	return age >= MinPlausibleAge && age <= MaxPlausibleAge
}

// Profile holds the biometric inputs of one session. Height and weight are
// in inches and pounds for Imperial, centimetres and kilograms for Metric.
type Profile struct {
	Age      int           `validate:"gt=0"`
	Sex      Sex           `validate:"oneof=male female"`
	Units    UnitSystem    `validate:"oneof=imperial metric"`
	Height   float64       `validate:"gt=0"`
	Weight   float64       `validate:"gt=0"`
	Activity ActivityLevel `validate:"min=1,max=5"`
}

func (p Profile) Validate() error {
	return validate.Struct(p)
}

// BMRError reports a non-positive basal metabolic rate, which means the
// age, weight and height combination cannot describe a living person.
type BMRError struct {
	Age    int
	Weight float64
	Height float64
	BMR    float64
}

func (e *BMRError) Error() string {
	return fmt.Sprintf("BMR (Basal Metabolic Rate), the minimum amount of calories that you need to survive, "+
		"was calculated to be %.2f, which is impossible. Your input for your weight, height or age was wrong. "+
		"The age you entered was %d, the weight was %g, and the height was %g", e.BMR, e.Age, e.Weight, e.Height)
}

// BMR computes the Mifflin-St Jeor basal metabolic rate.
func (p Profile) BMR() (float64, error) {
	var bmr float64
	switch p.Units {
	case Metric:
		bmr = 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	case Imperial:
		bmr = 4.536*p.Weight + 15.88*p.Height - 5*float64(p.Age)
	default:
		return 0, fmt.Errorf("unsupported unit system %q", string(p.Units))
	}
	if p.Sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	if bmr <= 0 {
		return 0, &BMRError{Age: p.Age, Weight: p.Weight, Height: p.Height, BMR: bmr}
	}
	return bmr, nil
}

// DailyCalories is BMR scaled by the activity multiplier.
func (p Profile) DailyCalories() (float64, error) {
	mult, err := p.Activity.Multiplier()
	if err != nil {
		return 0, err
	}
	bmr, err := p.BMR()
	if err != nil {
		return 0, err
	}
	return bmr * mult, nil
}
