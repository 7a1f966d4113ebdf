package out

import (
	"context"
	"fmt"
	"strconv"

	"haverfit/internal/modules/catalog/domain"
	catalogout "haverfit/internal/modules/catalog/port/out"
	"haverfit/internal/platform/logging"
	"haverfit/internal/platform/table"
)

// FlatFileFoodStore keeps foods in a comma-separated file with the columns
// label, name, calories, carbs, protein, fat.
type FlatFileFoodStore struct {
	path string
}

func NewFlatFileFoodStore(path string) catalogout.FoodStore {
	return &FlatFileFoodStore{path: path}
}

func (s *FlatFileFoodStore) Load(ctx context.Context) ([]domain.Food, error) {
	records, err := table.Read(s.path)
	if err != nil {
		return nil, err
	}
	foods := make([]domain.Food, 0, len(records))
	for i, record := range records {
		food, err := decodeFood(record)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", s.path, i+1, err)
		}
		foods = append(foods, food)
	}
	logging.FromContext(ctx).Debug("food catalog loaded", "path", s.path, "foods", len(foods))
	return foods, nil
}

func (s *FlatFileFoodStore) Append(ctx context.Context, food domain.Food) error {
	if err := table.Append(s.path, encodeFood(food)); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug("food appended", "path", s.path, "label", food.Label)
	return nil
}

func decodeFood(record []string) (domain.Food, error) {
	if len(record) != 6 {
		return domain.Food{}, fmt.Errorf("expected 6 fields, got %d", len(record))
	}
	values := make([]float64, 4)
	for i, raw := range record[2:] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Food{}, fmt.Errorf("parse %q: %w", raw, err)
		}
		values[i] = v
	}
	return domain.Food{
		Label:    record[0],
		Name:     record[1],
		Calories: values[0],
		Carb:     values[1],
		Protein:  values[2],
		Fat:      values[3],
	}, nil
}

func encodeFood(food domain.Food) []string {
	return []string{
		food.Label,
		food.Name,
		formatFloat(food.Calories),
		formatFloat(food.Carb),
		formatFloat(food.Protein),
		formatFloat(food.Fat),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
