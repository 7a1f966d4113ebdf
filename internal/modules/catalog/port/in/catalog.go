package in

import (
	"context"
	"iter"

	"haverfit/internal/modules/catalog/dto"
)

type Usecase interface {
	ListFoods(ctx context.Context) ([]dto.FoodOutput, error)
	Listing(ctx context.Context) (iter.Seq[dto.ListingEntry], error)
	GetFood(ctx context.Context, label string) (dto.FoodOutput, error)
	HasLabel(ctx context.Context, label string) (bool, error)
	AddFood(ctx context.Context, input dto.AddFoodInput) (dto.FoodOutput, error)
	SearchFoods(ctx context.Context, input dto.SearchInput) ([]dto.FoodOutput, error)
	Reindex(ctx context.Context) (int, error)
}
