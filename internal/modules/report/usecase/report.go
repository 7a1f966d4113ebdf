package usecase

import (
	"context"

	"haverfit/internal/modules/report/domain"
	"haverfit/internal/modules/report/dto"
	reportin "haverfit/internal/modules/report/port/in"
	"haverfit/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Save(ctx context.Context, input dto.SaveInput) (dto.SaveOutput, error) {
	report := domain.Report{
		Profile: domain.Profile(input.Profile),
		Target: domain.Target{
			BMR:      input.Target.BMR,
			Calories: input.Target.Calories,
			Carb:     domain.Band{Min: input.Target.MinCarb, Max: input.Target.MaxCarb},
			Protein:  domain.Band{Min: input.Target.MinProtein, Max: input.Target.MaxProtein},
			Fat:      domain.Band{Min: input.Target.MinFat, Max: input.Target.MaxFat},
		},
		Totals:    domain.Amounts(input.Totals),
		Deviation: domain.Amounts(input.Deviation),
	}
	if len(input.Advice) > 0 {
		report.Advice = make(map[string]string, len(input.Advice))
		for _, a := range input.Advice {
			report.Advice[a.Nutrient] = a.Direction
		}
	}
	saved, err := i.svc.Save(ctx, input.Path, report)
	if err != nil {
		return dto.SaveOutput{}, err
	}
	return dto.SaveOutput{ID: saved.ID, Path: input.Path}, nil
}
