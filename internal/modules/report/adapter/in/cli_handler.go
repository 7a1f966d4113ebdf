package in

import (
	"context"

	"haverfit/internal/modules/report/dto"
	reportin "haverfit/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error) {
	return h.usecase.Save(ctx, input)
}
