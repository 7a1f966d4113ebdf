package usecase

import (
	"context"
	"fmt"
	"iter"

	"haverfit/internal/modules/catalog/domain"
	"haverfit/internal/modules/catalog/dto"
	catalogin "haverfit/internal/modules/catalog/port/in"
	"haverfit/internal/modules/catalog/service"
	apperrors "haverfit/internal/platform/errors"
	"haverfit/internal/platform/validate"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListFoods(ctx context.Context) ([]dto.FoodOutput, error) {
	catalog, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	foods := catalog.All()
	out := make([]dto.FoodOutput, 0, len(foods))
	for _, food := range foods {
		out = append(out, toFoodOutput(food))
	}
	return out, nil
}

func (i *Interactor) Listing(ctx context.Context) (iter.Seq[dto.ListingEntry], error) {
	catalog, err := i.svc.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return func(yield func(dto.ListingEntry) bool) {
		for entry := range catalog.Listing() {
			if !yield(dto.ListingEntry{Header: entry.Header, Food: toFoodOutput(entry.Food)}) {
				return
			}
		}
	}, nil
}

func (i *Interactor) GetFood(ctx context.Context, label string) (dto.FoodOutput, error) {
	catalog, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.FoodOutput{}, err
	}
	food, ok := catalog.Find(label)
	if !ok {
		return dto.FoodOutput{}, fmt.Errorf("food %s: %w", label, apperrors.ErrNotFound)
	}
	return toFoodOutput(food), nil
}

func (i *Interactor) HasLabel(ctx context.Context, label string) (bool, error) {
	catalog, err := i.svc.Catalog(ctx)
	if err != nil {
		return false, err
	}
	return catalog.Has(label), nil
}

func (i *Interactor) AddFood(ctx context.Context, input dto.AddFoodInput) (dto.FoodOutput, error) {
	food, err := i.svc.Add(ctx, domain.Food{
		Name:     input.Name,
		Calories: input.Calories,
		Carb:     input.Carb,
		Protein:  input.Protein,
		Fat:      input.Fat,
	})
	if err != nil {
		return dto.FoodOutput{}, err
	}
	return toFoodOutput(food), nil
}

func (i *Interactor) SearchFoods(ctx context.Context, input dto.SearchInput) ([]dto.FoodOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	foods, err := i.svc.Search(ctx, domain.FoodQuery{
		Text:        input.Text,
		Category:    category,
		MaxCalories: input.MaxCalories,
		SortBy:      domain.SortKey(input.SortBy),
		Descending:  input.Descending,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.FoodOutput, 0, len(foods))
	for _, food := range foods {
		out = append(out, toFoodOutput(food))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) (int, error) {
	return i.svc.Reindex(ctx)
}

func toFoodOutput(food domain.Food) dto.FoodOutput {
	category, _, _ := domain.ParseLabel(food.Label)
	return dto.FoodOutput{
		Label:    food.Label,
		Name:     food.Name,
		Category: category.Title(),
		Calories: food.Calories,
		Carb:     food.Carb,
		Protein:  food.Protein,
		Fat:      food.Fat,
	}
}
