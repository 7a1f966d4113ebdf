package in

import (
	"context"

	"haverfit/internal/modules/intake/dto"
)

type Usecase interface {
	CheckEntry(ctx context.Context, text string) (dto.EntryOutput, error)
	Summarize(ctx context.Context, input dto.SummarizeInput) (dto.SummaryOutput, error)
}
