package in

import (
	"context"

	"haverfit/internal/modules/nutrition/dto"
	nutritionin "haverfit/internal/modules/nutrition/port/in"
)

type CLIHandler struct {
	usecase nutritionin.Usecase
}

func NewCLIHandler(usecase nutritionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ActivityLevels(ctx context.Context) []dto.ActivityOption {
	return h.usecase.ActivityLevels(ctx)
}

func (h CLIHandler) Plan(ctx context.Context, input dto.ProfileInput) (dto.TargetOutput, error) {
	return h.usecase.Plan(ctx, input)
}

func (h CLIHandler) Compare(ctx context.Context, target dto.TargetOutput, consumed dto.Nutrients) (dto.DeviationOutput, error) {
	return h.usecase.Compare(ctx, dto.CompareInput{Target: target, Consumed: consumed})
}
