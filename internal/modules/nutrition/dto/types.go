package dto

type ActivityOption struct {
	Level       int
	Description string
}

type ProfileInput struct {
	Age      int
	Sex      string
	Units    string
	Height   float64
	Weight   float64
	Activity int
}

// Nutrients is shared by the intake and advice modules.
type Nutrients struct {
	Calories float64
	Carb     float64
	Protein  float64
	Fat      float64
}

type TargetOutput struct {
	BMR        float64
	Calories   float64
	MinCarb    float64
	MaxCarb    float64
	MinProtein float64
	MaxProtein float64
	MinFat     float64
	MaxFat     float64
}

type CompareInput struct {
	Target   TargetOutput
	Consumed Nutrients
}

type DeviationOutput struct {
	Calories float64
	Carb     float64
	Protein  float64
	Fat      float64
}
