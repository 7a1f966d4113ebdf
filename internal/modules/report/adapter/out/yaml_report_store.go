package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"haverfit/internal/modules/report/domain"
	reportout "haverfit/internal/modules/report/port/out"
	"haverfit/internal/platform/logging"
)

type YAMLReportStore struct{}

func NewYAMLReportStore() reportout.ReportStore {
	return YAMLReportStore{}
}

type bandDoc struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type amountsDoc struct {
	Calories float64 `yaml:"calories"`
	Carb     float64 `yaml:"carbohydrate_g"`
	Protein  float64 `yaml:"protein_g"`
	Fat      float64 `yaml:"fat_g"`
}

type reportDoc struct {
	SchemaVersion int    `yaml:"schema_version"`
	ID            string `yaml:"id"`
	CreatedAt     string `yaml:"created_at"`
	Profile       struct {
		Age      int     `yaml:"age"`
		Sex      string  `yaml:"sex"`
		Units    string  `yaml:"units"`
		Height   float64 `yaml:"height"`
		Weight   float64 `yaml:"weight"`
		Activity int     `yaml:"activity_level"`
	} `yaml:"profile"`
	Target struct {
		BMR      float64 `yaml:"bmr"`
		Calories float64 `yaml:"calories"`
		Carb     bandDoc `yaml:"carbohydrate_g"`
		Protein  bandDoc `yaml:"protein_g"`
		Fat      bandDoc `yaml:"fat_g"`
	} `yaml:"target"`
	Totals    amountsDoc        `yaml:"totals"`
	Deviation amountsDoc        `yaml:"deviation"`
	Advice    map[string]string `yaml:"advice,omitempty"`
}

func (YAMLReportStore) Save(ctx context.Context, path string, report domain.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	payload, err := yaml.Marshal(toDoc(report))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logging.FromContext(ctx).Debug("report written", "path", path, "id", report.ID)
	return nil
}

func toDoc(r domain.Report) reportDoc {
	doc := reportDoc{
		SchemaVersion: domain.SchemaVersion,
		ID:            r.ID,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		Totals:        amountsDoc(r.Totals),
		Deviation:     amountsDoc(r.Deviation),
		Advice:        r.Advice,
	}
	doc.Profile.Age = r.Profile.Age
	doc.Profile.Sex = r.Profile.Sex
	doc.Profile.Units = r.Profile.Units
	doc.Profile.Height = r.Profile.Height
	doc.Profile.Weight = r.Profile.Weight
	doc.Profile.Activity = r.Profile.Activity
	doc.Target.BMR = r.Target.BMR
	doc.Target.Calories = r.Target.Calories
	doc.Target.Carb = bandDoc(r.Target.Carb)
	doc.Target.Protein = bandDoc(r.Target.Protein)
	doc.Target.Fat = bandDoc(r.Target.Fat)
	return doc
}
