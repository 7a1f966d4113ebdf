package service

import (
	"context"
	"fmt"

	"haverfit/internal/modules/report/domain"
	reportout "haverfit/internal/modules/report/port/out"
	"haverfit/internal/platform/clock"
	"haverfit/internal/platform/id"
)

type ReportService struct {
	clock clock.Clock
	idGen id.Generator
	store reportout.ReportStore
}

func NewReportService(clock clock.Clock, idGen id.Generator, store reportout.ReportStore) *ReportService {
	return &ReportService{clock: clock, idGen: idGen, store: store}
}

// Save stamps report with a fresh id and the current time, then writes it
// to path.
func (s *ReportService) Save(ctx context.Context, path string, report domain.Report) (domain.Report, error) {
	if path == "" {
		return domain.Report{}, fmt.Errorf("report path is required")
	}
	report.ID = s.idGen.New()
	report.CreatedAt = s.clock.Now()
	if err := s.store.Save(ctx, path, report); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}
