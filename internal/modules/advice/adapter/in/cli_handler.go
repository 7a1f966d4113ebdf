package in

import (
	"context"

	"haverfit/internal/modules/advice/dto"
	advicein "haverfit/internal/modules/advice/port/in"
	intakedto "haverfit/internal/modules/intake/dto"
	nutritiondto "haverfit/internal/modules/nutrition/dto"
)

type CLIHandler struct {
	usecase advicein.Usecase
}

func NewCLIHandler(usecase advicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Advise(ctx context.Context, deviation nutritiondto.DeviationOutput, peaks []intakedto.PeakOutput) (dto.AdviseOutput, error) {
	return h.usecase.Advise(ctx, dto.AdviseInput{Deviation: deviation, Peaks: peaks})
}
