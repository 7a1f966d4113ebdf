package in

import (
	"context"

	"haverfit/internal/modules/intake/dto"
	intakein "haverfit/internal/modules/intake/port/in"
)

type CLIHandler struct {
	usecase intakein.Usecase
}

func NewCLIHandler(usecase intakein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) CheckEntry(ctx context.Context, text string) (dto.EntryOutput, error) {
	return h.usecase.CheckEntry(ctx, text)
}

func (h CLIHandler) Summarize(ctx context.Context, entries []dto.EntryOutput) (dto.SummaryOutput, error) {
	return h.usecase.Summarize(ctx, dto.SummarizeInput{Entries: entries})
}
