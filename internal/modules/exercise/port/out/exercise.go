package out

import (
	"context"

	"haverfit/internal/modules/exercise/domain"
)

type ExerciseStore interface {
	Load(ctx context.Context) ([]domain.Exercise, error)
}
