package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"haverfit/internal/modules/nutrition/domain"
	"haverfit/internal/modules/nutrition/dto"
	"haverfit/internal/modules/nutrition/usecase"
	apperrors "haverfit/internal/platform/errors"
)

func TestPlanAndCompare(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor()
	target, err := uc.Plan(context.Background(), dto.ProfileInput{Age: 30, Sex: "male", Units: "metric", Height: 180, Weight: 75, Activity: 1})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if target.BMR != 1730 || math.Abs(target.Calories-2076) > 1e-9 {
		t.Fatalf("unexpected target %+v", target)
	}
	if !(target.MinCarb < target.MaxCarb && target.MinProtein < target.MaxProtein && target.MinFat < target.MaxFat) {
		t.Fatalf("bands not ordered: %+v", target)
	}

	dev, err := uc.Compare(context.Background(), dto.CompareInput{
		Target:   target,
		Consumed: dto.Nutrients{Calories: target.Calories + 300, Carb: target.MinCarb, Protein: target.MaxProtein + 5, Fat: target.MinFat - 2},
	})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if math.Abs(dev.Calories-300) > 1e-9 || dev.Carb != 0 || math.Abs(dev.Protein-5) > 1e-9 || math.Abs(dev.Fat+2) > 1e-9 {
		t.Fatalf("unexpected deviation %+v", dev)
	}
}

func TestPlanRejectsInvalidProfile(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor()
	_, err := uc.Plan(context.Background(), dto.ProfileInput{Age: 30, Sex: "male", Units: "metric", Height: 180, Weight: 75, Activity: 9})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlanReturnsBMRError(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor()
	_, err := uc.Plan(context.Background(), dto.ProfileInput{Age: 90, Sex: "female", Units: "imperial", Height: 2, Weight: 3, Activity: 2})
	var bmrErr *domain.BMRError
	if !errors.As(err, &bmrErr) {
		t.Fatalf("expected BMRError, got %v", err)
	}
	if bmrErr.Age != 90 || bmrErr.Weight != 3 || bmrErr.Height != 2 {
		t.Fatalf("unexpected BMR error fields %+v", bmrErr)
	}
}

func TestActivityLevelsInMenuOrder(t *testing.T) {
	t.Parallel()
	levels := usecase.NewInteractor().ActivityLevels(context.Background())
	if len(levels) != 5 || levels[0].Level != 1 || levels[4].Level != 5 {
		t.Fatalf("unexpected levels %+v", levels)
	}
	if levels[0].Description != "Sedentary: little to no exercise, desk job" {
		t.Fatalf("unexpected description %q", levels[0].Description)
	}
}
