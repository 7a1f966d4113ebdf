package domain

import nutrition "haverfit/internal/modules/nutrition/domain"

// Item is a catalog food as seen by intake calculations.
type Item struct {
	Label      string
	Name       string
	PerServing nutrition.Nutrients
}

// Aggregate sums per-serving values of consumed items weighted by their
// servings. Items absent from the ledger are skipped.
func Aggregate(items []Item, ledger *Ledger) nutrition.Nutrients {
	total := nutrition.Nutrients{}
	for _, item := range items {
		servings, ok := ledger.Servings(item.Label)
		if !ok {
			continue
		}
		total = total.Add(item.PerServing.Scale(servings))
	}
	return total
}

// Peak is the consumed item with the highest per-serving amount of one
// nutrient. Name is empty when no consumed item contains the nutrient.
type Peak struct {
	Name   string
	Amount float64
}

type Peaks map[nutrition.Nutrient]Peak

// FindPeaks scans consumed items in catalog order. Only a strictly greater
// amount replaces the current peak, so ties keep the first item.
func FindPeaks(items []Item, ledger *Ledger) Peaks {
	peaks := Peaks{}
	for _, n := range nutrition.AllNutrients() {
		peaks[n] = Peak{}
	}
	for _, item := range items {
		if _, ok := ledger.Servings(item.Label); !ok {
			continue
		}
		for _, n := range nutrition.AllNutrients() {
			if amount := n.Of(item.PerServing); amount > peaks[n].Amount {
				peaks[n] = Peak{Name: item.Name, Amount: amount}
			}
		}
	}
	return peaks
}
