package out

import (
	"context"
	"fmt"
	"strconv"

	"haverfit/internal/modules/exercise/domain"
	exerciseout "haverfit/internal/modules/exercise/port/out"
	"haverfit/internal/platform/logging"
	"haverfit/internal/platform/table"
)

// FlatFileExerciseStore reads exercises from a comma-separated file with the
// columns label, name, kcal/hour at 125, 155 and 185 lb.
type FlatFileExerciseStore struct {
	path string
}

func NewFlatFileExerciseStore(path string) exerciseout.ExerciseStore {
	return &FlatFileExerciseStore{path: path}
}

func (s *FlatFileExerciseStore) Load(ctx context.Context) ([]domain.Exercise, error) {
	records, err := table.Read(s.path)
	if err != nil {
		return nil, err
	}
	exercises := make([]domain.Exercise, 0, len(records))
	for i, record := range records {
		exercise, err := decodeExercise(record)
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", s.path, i+1, err)
		}
		if err := exercise.Validate(); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", s.path, i+1, err)
		}
		exercises = append(exercises, exercise)
	}
	logging.FromContext(ctx).Debug("exercise catalog loaded", "path", s.path, "exercises", len(exercises))
	return exercises, nil
}

func decodeExercise(record []string) (domain.Exercise, error) {
	if len(record) != 5 {
		return domain.Exercise{}, fmt.Errorf("expected 5 fields, got %d", len(record))
	}
	rates := make([]float64, 3)
	for i, raw := range record[2:] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Exercise{}, fmt.Errorf("parse %q: %w", raw, err)
		}
		rates[i] = v
	}
	return domain.Exercise{
		Label:     record[0],
		Name:      record[1],
		KcalAt125: rates[0],
		KcalAt155: rates[1],
		KcalAt185: rates[2],
	}, nil
}
