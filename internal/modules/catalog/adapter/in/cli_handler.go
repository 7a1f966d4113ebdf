package in

import (
	"context"
	"iter"

	"haverfit/internal/modules/catalog/dto"
	catalogin "haverfit/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListFoods(ctx context.Context) ([]dto.FoodOutput, error) {
	return h.usecase.ListFoods(ctx)
}

func (h CLIHandler) Listing(ctx context.Context) (iter.Seq[dto.ListingEntry], error) {
	return h.usecase.Listing(ctx)
}

func (h CLIHandler) HasLabel(ctx context.Context, label string) (bool, error) {
	return h.usecase.HasLabel(ctx, label)
}

func (h CLIHandler) AddFood(ctx context.Context, name string, calories, carb, protein, fat float64) (dto.FoodOutput, error) {
	return h.usecase.AddFood(ctx, dto.AddFoodInput{Name: name, Calories: calories, Carb: carb, Protein: protein, Fat: fat})
}

func (h CLIHandler) SearchFoods(ctx context.Context, input dto.SearchInput) ([]dto.FoodOutput, error) {
	return h.usecase.SearchFoods(ctx, input)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx)
}
