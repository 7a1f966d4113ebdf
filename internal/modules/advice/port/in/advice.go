package in

import (
	"context"

	"haverfit/internal/modules/advice/dto"
)

type Usecase interface {
	Advise(ctx context.Context, input dto.AdviseInput) (dto.AdviseOutput, error)
}
