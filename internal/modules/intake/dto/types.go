package dto

import nutritiondto "haverfit/internal/modules/nutrition/dto"

type EntryOutput struct {
	Label    string
	Servings float64
}

// SummarizeInput lists entries in input order; a repeated label keeps its
// last servings value.
type SummarizeInput struct {
	Entries []EntryOutput
}

type PeakOutput struct {
	Nutrient string
	Name     string
	Amount   float64
}

type SummaryOutput struct {
	Totals nutritiondto.Nutrients
	Peaks  []PeakOutput
}
