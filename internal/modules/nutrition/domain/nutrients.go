package domain

// Nutrients is a calorie, carbohydrate, protein and fat quadruple. Calories
// are kcal, the rest grams.
type Nutrients struct {
	Calories float64
	Carb     float64
	Protein  float64
	Fat      float64
}

// Scale multiplies every field by factor.
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * factor,
		Carb:     n.Carb * factor,
		Protein:  n.Protein * factor,
		Fat:      n.Fat * factor,
	}
}

func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + other.Calories,
		Carb:     n.Carb + other.Carb,
		Protein:  n.Protein + other.Protein,
		Fat:      n.Fat + other.Fat,
	}
}

type Nutrient int

const (
	Calories Nutrient = iota
	Carbohydrate
	Protein
	Fat
)

// AllNutrients lists nutrients in report order.
func AllNutrients() []Nutrient {
	return []Nutrient{Calories, Carbohydrate, Protein, Fat}
}

func (n Nutrient) String() string {
	switch n {
	case Calories:
		return "calorie"
	case Carbohydrate:
		return "carbohydrate"
	case Protein:
		return "protein"
	case Fat:
		return "fat"
	default:
		return "unknown"
	}
}

// ParseNutrient is the inverse of Nutrient.String.
func ParseNutrient(s string) (Nutrient, bool) {
	for _, n := range AllNutrients() {
		if n.String() == s {
			return n, true
		}
	}
	return 0, false
}

func (n Nutrient) Unit() string {
	if n == Calories {
		return "calories"
	}
	return "grams"
}

// Of selects the field of v that holds n.
func (n Nutrient) Of(v Nutrients) float64 {
	switch n {
	case Calories:
		return v.Calories
	case Carbohydrate:
		return v.Carb
	case Protein:
		return v.Protein
	case Fat:
		return v.Fat
	default:
		return 0
	}
}
