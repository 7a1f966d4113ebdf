package in

import (
	"context"

	"haverfit/internal/modules/exercise/dto"
	exercisein "haverfit/internal/modules/exercise/port/in"
)

type CLIHandler struct {
	usecase exercisein.Usecase
}

func NewCLIHandler(usecase exercisein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListExercises(ctx context.Context) ([]dto.ExerciseOutput, error) {
	return h.usecase.ListExercises(ctx)
}

func (h CLIHandler) Plan(ctx context.Context, label int, weightLb, excess float64) (dto.PlanOutput, error) {
	return h.usecase.Plan(ctx, dto.PlanInput{Label: label, WeightLb: weightLb, ExcessCalories: excess})
}
