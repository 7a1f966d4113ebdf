package usecase

import (
	"context"

	"haverfit/internal/modules/intake/domain"
	"haverfit/internal/modules/intake/dto"
	intakein "haverfit/internal/modules/intake/port/in"
	"haverfit/internal/modules/intake/service"
	nutrition "haverfit/internal/modules/nutrition/domain"
	nutritiondto "haverfit/internal/modules/nutrition/dto"
)

type Interactor struct {
	svc *service.IntakeService
}

func NewInteractor(svc *service.IntakeService) intakein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) CheckEntry(ctx context.Context, text string) (dto.EntryOutput, error) {
	label, servings, err := i.svc.CheckEntry(ctx, text)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return dto.EntryOutput{Label: label, Servings: servings}, nil
}

func (i *Interactor) Summarize(ctx context.Context, input dto.SummarizeInput) (dto.SummaryOutput, error) {
	ledger := domain.NewLedger()
	for _, entry := range input.Entries {
		if err := ledger.Set(entry.Label, entry.Servings); err != nil {
			return dto.SummaryOutput{}, err
		}
	}
	totals, peaks, err := i.svc.Summarize(ctx, ledger)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	out := dto.SummaryOutput{Totals: nutritiondto.Nutrients(totals)}
	for _, n := range nutrition.AllNutrients() {
		peak := peaks[n]
		out.Peaks = append(out.Peaks, dto.PeakOutput{Nutrient: n.String(), Name: peak.Name, Amount: peak.Amount})
	}
	return out, nil
}
