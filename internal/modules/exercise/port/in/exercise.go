package in

import (
	"context"

	"haverfit/internal/modules/exercise/dto"
)

type Usecase interface {
	ListExercises(ctx context.Context) ([]dto.ExerciseOutput, error)
	Plan(ctx context.Context, input dto.PlanInput) (dto.PlanOutput, error)
}
