package in

import (
	"context"

	"haverfit/internal/modules/nutrition/dto"
)

type Usecase interface {
	ActivityLevels(ctx context.Context) []dto.ActivityOption
	Plan(ctx context.Context, input dto.ProfileInput) (dto.TargetOutput, error)
	Compare(ctx context.Context, input dto.CompareInput) (dto.DeviationOutput, error)
}
