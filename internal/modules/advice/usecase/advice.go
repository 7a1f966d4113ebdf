package usecase

import (
	"context"
	"fmt"

	"haverfit/internal/modules/advice/domain"
	"haverfit/internal/modules/advice/dto"
	advicein "haverfit/internal/modules/advice/port/in"
	intake "haverfit/internal/modules/intake/domain"
	nutrition "haverfit/internal/modules/nutrition/domain"
	apperrors "haverfit/internal/platform/errors"
	"haverfit/internal/platform/logging"
)

type Interactor struct{}

func NewInteractor() advicein.Usecase {
	return &Interactor{}
}

func (i *Interactor) Advise(ctx context.Context, input dto.AdviseInput) (dto.AdviseOutput, error) {
	peaks := intake.Peaks{}
	for _, p := range input.Peaks {
		n, ok := nutrition.ParseNutrient(p.Nutrient)
		if !ok {
			return dto.AdviseOutput{}, fmt.Errorf("%w: unknown nutrient %q", apperrors.ErrInvalidInput, p.Nutrient)
		}
		peaks[n] = intake.Peak{Name: p.Name, Amount: p.Amount}
	}
	deviation := nutrition.Deviation(input.Deviation)

	out := dto.AdviseOutput{}
	for _, a := range domain.Build(deviation, peaks) {
		out.Items = append(out.Items, dto.AdviceOutput{
			Nutrient:   a.Nutrient.String(),
			Direction:  a.Direction.String(),
			Amount:     a.Amount,
			Unit:       a.Nutrient.Unit(),
			Food:       a.Food,
			FoodAmount: a.FoodAmount,
			Message:    a.Message(),
		})
	}
	if deviation.Calories > 0 {
		out.ExcessCalories = deviation.Calories
	}
	logging.FromContext(ctx).Debug("advice built", "items", len(out.Items), "excess_calories", out.ExcessCalories)
	return out, nil
}
