package out

import (
	"context"

	"haverfit/internal/modules/report/domain"
)

type ReportStore interface {
	Save(ctx context.Context, path string, report domain.Report) error
}
