package domain

import "time"

const SchemaVersion = 1

type Profile struct {
	Age      int
	Sex      string
	Units    string
	Height   float64
	Weight   float64
	Activity int
}

type Band struct {
	Min float64
	Max float64
}

type Target struct {
	BMR      float64
	Calories float64
	Carb     Band
	Protein  Band
	Fat      Band
}

// Amounts holds one value per nutrient in calories and grams.
type Amounts struct {
	Calories float64
	Carb     float64
	Protein  float64
	Fat      float64
}

// Report summarizes one session. Individual consumption entries are not
// part of it.
type Report struct {
	ID        string
	CreatedAt time.Time
	Profile   Profile
	Target    Target
	Totals    Amounts
	Deviation Amounts
	Advice    map[string]string
}
