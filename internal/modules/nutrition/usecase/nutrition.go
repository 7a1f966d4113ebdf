package usecase

import (
	"context"

	"haverfit/internal/modules/nutrition/domain"
	"haverfit/internal/modules/nutrition/dto"
	nutritionin "haverfit/internal/modules/nutrition/port/in"
	"haverfit/internal/platform/logging"
)

type Interactor struct{}

func NewInteractor() nutritionin.Usecase {
	return &Interactor{}
}

func (i *Interactor) ActivityLevels(_ context.Context) []dto.ActivityOption {
	levels := domain.ActivityLevels()
	out := make([]dto.ActivityOption, 0, len(levels))
	for _, level := range levels {
		out = append(out, dto.ActivityOption{Level: int(level), Description: level.Description()})
	}
	return out
}

// Plan validates the profile and derives the daily target. A non-positive
// BMR is returned as *domain.BMRError.
func (i *Interactor) Plan(ctx context.Context, input dto.ProfileInput) (dto.TargetOutput, error) {
	profile := domain.Profile{
		Age:      input.Age,
		Sex:      domain.Sex(input.Sex),
		Units:    domain.UnitSystem(input.Units),
		Height:   input.Height,
		Weight:   input.Weight,
		Activity: domain.ActivityLevel(input.Activity),
	}
	if err := profile.Validate(); err != nil {
		return dto.TargetOutput{}, err
	}
	bmr, err := profile.BMR()
	if err != nil {
		return dto.TargetOutput{}, err
	}
	calories, err := profile.DailyCalories()
	if err != nil {
		return dto.TargetOutput{}, err
	}
	target := domain.TargetFor(calories)
	logging.FromContext(ctx).Debug("target computed", "bmr", bmr, "calories", calories, "units", profile.Units)
	return toTargetOutput(bmr, target), nil
}

func (i *Interactor) Compare(_ context.Context, input dto.CompareInput) (dto.DeviationOutput, error) {
	t := input.Target
	target := domain.Target{
		Calories: t.Calories,
		Carb:     domain.Band{Min: t.MinCarb, Max: t.MaxCarb},
		Protein:  domain.Band{Min: t.MinProtein, Max: t.MaxProtein},
		Fat:      domain.Band{Min: t.MinFat, Max: t.MaxFat},
	}
	dev := domain.Compare(target, domain.Nutrients(input.Consumed))
	return dto.DeviationOutput(dev), nil
}

func toTargetOutput(bmr float64, t domain.Target) dto.TargetOutput {
	return dto.TargetOutput{
		BMR:        bmr,
		Calories:   t.Calories,
		MinCarb:    t.Carb.Min,
		MaxCarb:    t.Carb.Max,
		MinProtein: t.Protein.Min,
		MaxProtein: t.Protein.Max,
		MinFat:     t.Fat.Min,
		MaxFat:     t.Fat.Max,
	}
}
