package out

import (
	"context"

	catalogin "haverfit/internal/modules/catalog/port/in"
	"haverfit/internal/modules/intake/domain"
	intakeout "haverfit/internal/modules/intake/port/out"
	nutrition "haverfit/internal/modules/nutrition/domain"
)

type CatalogFoodSource struct {
	catalog catalogin.Usecase
}

func NewCatalogFoodSource(catalog catalogin.Usecase) intakeout.FoodSource {
	return &CatalogFoodSource{catalog: catalog}
}

func (a *CatalogFoodSource) Items(ctx context.Context) ([]domain.Item, error) {
	foods, err := a.catalog.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Item, 0, len(foods))
	for _, food := range foods {
		out = append(out, domain.Item{
			Label: food.Label,
			Name:  food.Name,
			PerServing: nutrition.Nutrients{
				Calories: food.Calories,
				Carb:     food.Carb,
				Protein:  food.Protein,
				Fat:      food.Fat,
			},
		})
	}
	return out, nil
}

func (a *CatalogFoodSource) Has(ctx context.Context, label string) (bool, error) {
	return a.catalog.HasLabel(ctx, label)
}
