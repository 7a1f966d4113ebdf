package domain_test

import (
	"testing"

	"haverfit/internal/modules/intake/domain"
	nutrition "haverfit/internal/modules/nutrition/domain"
)

func items() []domain.Item {
	return []domain.Item{
		{Label: "B1", Name: "Oatmeal", PerServing: nutrition.Nutrients{Calories: 150, Carb: 27, Protein: 5, Fat: 3}},
		{Label: "B2", Name: "Eggs", PerServing: nutrition.Nutrients{Calories: 180, Carb: 2, Protein: 12, Fat: 14}},
		{Label: "L1", Name: "Sandwich", PerServing: nutrition.Nutrients{Calories: 350, Carb: 40, Protein: 22, Fat: 10}},
		{Label: "D1", Name: "Chicken", PerServing: nutrition.Nutrients{Calories: 280, Carb: 0, Protein: 40, Fat: 12}},
		{Label: "D2", Name: "Tofu", PerServing: nutrition.Nutrients{Calories: 280, Carb: 8, Protein: 40, Fat: 14}},
	}
}

func TestAggregateSingleFood(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger()
	_ = l.Set("B1", 2)
	got := domain.Aggregate(items(), l)
	want := nutrition.Nutrients{Calories: 300, Carb: 54, Protein: 10, Fat: 6}
	if got != want {
		t.Fatalf("aggregate = %+v, want %+v", got, want)
	}
}

func TestAggregateZeroServings(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger()
	for _, item := range items() {
		_ = l.Set(item.Label, 0)
	}
	if got := domain.Aggregate(items(), l); got != (nutrition.Nutrients{}) {
		t.Fatalf("zero servings must aggregate to zero, got %+v", got)
	}
}

func TestAggregateSkipsUnknownAndUnconsumed(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger()
	_ = l.Set("L1", 0.5)
	_ = l.Set("X9", 10)
	got := domain.Aggregate(items(), l)
	if got != (nutrition.Nutrients{Calories: 175, Carb: 20, Protein: 11, Fat: 5}) {
		t.Fatalf("unexpected totals %+v", got)
	}
}

func TestFindPeaks(t *testing.T) {
	t.Parallel()
	l := domain.NewLedger()
	_ = l.Set("B1", 1)
	_ = l.Set("D1", 1)
	_ = l.Set("D2", 1)
	peaks := domain.FindPeaks(items(), l)
	if p := peaks[nutrition.Calories]; p.Name != "Chicken" || p.Amount != 280 {
		t.Fatalf("calorie tie must keep first seen, got %+v", p)
	}
	if p := peaks[nutrition.Protein]; p.Name != "Chicken" {
		t.Fatalf("protein tie must keep first seen, got %+v", p)
	}
	if p := peaks[nutrition.Carbohydrate]; p.Name != "Oatmeal" || p.Amount != 27 {
		t.Fatalf("unexpected carb peak %+v", p)
	}
	if p := peaks[nutrition.Fat]; p.Name != "Tofu" || p.Amount != 14 {
		t.Fatalf("unexpected fat peak %+v", p)
	}

	empty := domain.FindPeaks(items(), domain.NewLedger())
	if p := empty[nutrition.Fat]; p.Name != "" || p.Amount != 0 {
		t.Fatalf("empty ledger must have empty peaks, got %+v", p)
	}
}
