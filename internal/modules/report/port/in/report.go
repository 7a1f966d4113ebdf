package in

import (
	"context"

	"haverfit/internal/modules/report/dto"
)

type Usecase interface {
	Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error)
}
