package usecase

import (
	"context"
	"fmt"
	"strconv"

	"haverfit/internal/modules/exercise/domain"
	"haverfit/internal/modules/exercise/dto"
	exercisein "haverfit/internal/modules/exercise/port/in"
	"haverfit/internal/modules/exercise/service"
	apperrors "haverfit/internal/platform/errors"
	"haverfit/internal/platform/logging"
	"haverfit/internal/platform/validate"
)

type Interactor struct {
	svc *service.ExerciseService
}

func NewInteractor(svc *service.ExerciseService) exercisein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListExercises(ctx context.Context) ([]dto.ExerciseOutput, error) {
	exercises, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExerciseOutput, 0, len(exercises))
	for _, exercise := range exercises {
		out = append(out, dto.ExerciseOutput{Label: exercise.Label, Name: exercise.Name})
	}
	return out, nil
}

func (i *Interactor) Plan(ctx context.Context, input dto.PlanInput) (dto.PlanOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.PlanOutput{}, err
	}
	exercise, err := i.svc.Find(ctx, strconv.Itoa(input.Label))
	if err != nil {
		return dto.PlanOutput{}, err
	}
	bracket := domain.NearestBracket(input.WeightLb)
	perHour := exercise.KcalPerHour(bracket)
	if perHour <= 0 {
		return dto.PlanOutput{}, fmt.Errorf("exercise %s has no burn rate at %d lb: %w", exercise.Label, int(bracket), apperrors.ErrNotFound)
	}
	minutes, err := domain.MinutesToBurn(input.ExcessCalories, perHour)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	logging.FromContext(ctx).Debug("exercise planned", "label", exercise.Label, "bracket", int(bracket), "minutes", minutes)
	return dto.PlanOutput{
		Name:        exercise.Name,
		Bracket:     int(bracket),
		KcalPerHour: perHour,
		Minutes:     minutes,
	}, nil
}
