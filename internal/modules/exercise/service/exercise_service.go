package service

import (
	"context"
	"fmt"

	"haverfit/internal/modules/exercise/domain"
	exerciseout "haverfit/internal/modules/exercise/port/out"
	apperrors "haverfit/internal/platform/errors"
)

type ExerciseService struct {
	store     exerciseout.ExerciseStore
	exercises []domain.Exercise
}

func NewExerciseService(store exerciseout.ExerciseStore) *ExerciseService {
	return &ExerciseService{store: store}
}

func (s *ExerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	if s.exercises != nil {
		return s.exercises, nil
	}
	exercises, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	s.exercises = exercises
	return exercises, nil
}

func (s *ExerciseService) Find(ctx context.Context, label string) (domain.Exercise, error) {
	exercises, err := s.List(ctx)
	if err != nil {
		return domain.Exercise{}, err
	}
	for _, exercise := range exercises {
		if exercise.Label == label {
			return exercise, nil
		}
	}
	return domain.Exercise{}, fmt.Errorf("exercise %s: %w", label, apperrors.ErrNotFound)
}
