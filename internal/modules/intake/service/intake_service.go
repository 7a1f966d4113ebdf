package service

import (
	"context"
	"fmt"

	"haverfit/internal/modules/intake/domain"
	intakeout "haverfit/internal/modules/intake/port/out"
	nutrition "haverfit/internal/modules/nutrition/domain"
	"haverfit/internal/platform/logging"
)

type IntakeService struct {
	foods intakeout.FoodSource
}

func NewIntakeService(foods intakeout.FoodSource) *IntakeService {
	return &IntakeService{foods: foods}
}

// CheckEntry parses one "label-servings" line and verifies the label is in
// the catalog, including foods added earlier in the session. The label is
// checked before the serving amount.
func (s *IntakeService) CheckEntry(ctx context.Context, text string) (string, float64, error) {
	label, amount, err := domain.SplitEntry(text)
	if err != nil {
		return "", 0, err
	}
	known, err := s.foods.Has(ctx, label)
	if err != nil {
		return "", 0, err
	}
	if !known {
		return "", 0, fmt.Errorf("%w: the label %s does not exist, please enter an acceptable label", domain.ErrUnknownLabel, label)
	}
	servings, err := domain.ParseServings(amount)
	if err != nil {
		return "", 0, err
	}
	return label, servings, nil
}

// Summarize totals the ledger and finds the richest consumed food for each
// nutrient.
func (s *IntakeService) Summarize(ctx context.Context, ledger *domain.Ledger) (nutrition.Nutrients, domain.Peaks, error) {
	items, err := s.foods.Items(ctx)
	if err != nil {
		return nutrition.Nutrients{}, nil, err
	}
	totals := domain.Aggregate(items, ledger)
	peaks := domain.FindPeaks(items, ledger)
	logging.FromContext(ctx).Debug("intake summarized", "entries", ledger.Len(), "calories", totals.Calories)
	return totals, peaks, nil
}
