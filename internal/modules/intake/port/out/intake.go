package out

import (
	"context"

	"haverfit/internal/modules/intake/domain"
)

// FoodSource exposes the session's food catalog in file order.
type FoodSource interface {
	Items(ctx context.Context) ([]domain.Item, error)
	Has(ctx context.Context, label string) (bool, error)
}
