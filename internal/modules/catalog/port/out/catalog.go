package out

import (
	"context"

	"haverfit/internal/modules/catalog/domain"
)

// FoodStore is the persistent, append-only food table.
type FoodStore interface {
	Load(ctx context.Context) ([]domain.Food, error)
	Append(ctx context.Context, food domain.Food) error
}

// FoodIndex is a queryable copy of the food table. It can be rebuilt from
// the store at any time.
type FoodIndex interface {
	Reset(ctx context.Context) error
	UpsertFood(ctx context.Context, food domain.Food) error
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, query domain.FoodQuery) ([]domain.Food, error)
	Close() error
}
