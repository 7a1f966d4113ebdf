package domain

// Deviation is the signed distance of consumed nutrients from the target.
// Positive means excess, negative deficit, zero on target.
type Deviation struct {
	Calories float64
	Carb     float64
	Protein  float64
	Fat      float64
}

func (d Deviation) Of(n Nutrient) float64 {
	return n.Of(Nutrients(d))
}

// CompareToRange returns value-max above the range, value-min below it and
// zero inside it.
func CompareToRange(max, min, value float64) float64 {
	if value > max {
		return value - max
	}
	if value < min {
		return value - min
	}
	return 0
}

func Compare(target Target, consumed Nutrients) Deviation {
	return Deviation{
		Calories: consumed.Calories - target.Calories,
		Carb:     CompareToRange(target.Carb.Max, target.Carb.Min, consumed.Carb),
		Protein:  CompareToRange(target.Protein.Max, target.Protein.Min, consumed.Protein),
		Fat:      CompareToRange(target.Fat.Max, target.Fat.Min, consumed.Fat),
	}
}
