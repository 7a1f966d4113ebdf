package usecase_test

import (
	"context"
	"errors"
	"testing"

	"haverfit/internal/modules/intake/domain"
	"haverfit/internal/modules/intake/dto"
	"haverfit/internal/modules/intake/service"
	"haverfit/internal/modules/intake/usecase"
	nutrition "haverfit/internal/modules/nutrition/domain"
	nutritiondto "haverfit/internal/modules/nutrition/dto"
	apperrors "haverfit/internal/platform/errors"
)

type fakeFoods struct {
	items []domain.Item
	err   error
}

func (f *fakeFoods) Items(context.Context) ([]domain.Item, error) {
	return f.items, f.err
}

func (f *fakeFoods) Has(_ context.Context, label string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, item := range f.items {
		if item.Label == label {
			return true, nil
		}
	}
	return false, nil
}

func newFoods() *fakeFoods {
	return &fakeFoods{items: []domain.Item{
		{Label: "B1", Name: "Oatmeal", PerServing: nutrition.Nutrients{Calories: 150, Carb: 27, Protein: 5, Fat: 3}},
		{Label: "D1", Name: "Chicken", PerServing: nutrition.Nutrients{Calories: 280, Carb: 0, Protein: 40, Fat: 12}},
		{Label: "U1", Name: "Toast", PerServing: nutrition.Nutrients{Calories: 80, Carb: 14, Protein: 3, Fat: 1}},
	}}
}

func TestCheckEntry(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewIntakeService(newFoods()))
	entry, err := uc.CheckEntry(context.Background(), "U1-1.5")
	if err != nil {
		t.Fatalf("check entry: %v", err)
	}
	if entry.Label != "U1" || entry.Servings != 1.5 {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if _, err := uc.CheckEntry(context.Background(), "L7-1"); !errors.Is(err, domain.ErrUnknownLabel) {
		t.Fatalf("expected ErrUnknownLabel, got %v", err)
	}
	if _, err := uc.CheckEntry(context.Background(), "B1-x"); !errors.Is(err, domain.ErrServingFormat) {
		t.Fatalf("expected ErrServingFormat, got %v", err)
	}
}

func TestCheckEntryReportsUnknownLabelBeforeServing(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewIntakeService(newFoods()))
	_, err := uc.CheckEntry(context.Background(), "Z9-abc")
	if !errors.Is(err, domain.ErrUnknownLabel) {
		t.Fatalf("expected ErrUnknownLabel, got %v", err)
	}
	if _, err := uc.CheckEntry(context.Background(), "B1-inf"); !errors.Is(err, domain.ErrServingRange) {
		t.Fatalf("expected ErrServingRange, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewIntakeService(newFoods()))
	out, err := uc.Summarize(context.Background(), dto.SummarizeInput{Entries: []dto.EntryOutput{
		{Label: "B1", Servings: 5},
		{Label: "D1", Servings: 1},
		{Label: "B1", Servings: 2},
	}})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	want := nutritiondto.Nutrients{Calories: 580, Carb: 54, Protein: 50, Fat: 18}
	if out.Totals != want {
		t.Fatalf("totals = %+v, want %+v", out.Totals, want)
	}
	if len(out.Peaks) != 4 {
		t.Fatalf("expected one peak per nutrient, got %+v", out.Peaks)
	}
	if out.Peaks[0].Nutrient != "calorie" || out.Peaks[0].Name != "Chicken" {
		t.Fatalf("unexpected calorie peak %+v", out.Peaks[0])
	}
	if out.Peaks[1].Name != "Oatmeal" || out.Peaks[1].Amount != 27 {
		t.Fatalf("unexpected carb peak %+v", out.Peaks[1])
	}
}

func TestSummarizePropagatesUnavailableCatalog(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewIntakeService(&fakeFoods{err: apperrors.ErrCatalogUnavailable}))
	if _, err := uc.Summarize(context.Background(), dto.SummarizeInput{}); !errors.Is(err, apperrors.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}
