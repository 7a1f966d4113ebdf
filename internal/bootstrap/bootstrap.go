package bootstrap

import (
	"context"
	"io"

	adviceinadapter "haverfit/internal/modules/advice/adapter/in"
	adviceusecase "haverfit/internal/modules/advice/usecase"
	cataloginadapter "haverfit/internal/modules/catalog/adapter/in"
	catalogoutadapter "haverfit/internal/modules/catalog/adapter/out"
	catalogservice "haverfit/internal/modules/catalog/service"
	catalogusecase "haverfit/internal/modules/catalog/usecase"
	exerciseinadapter "haverfit/internal/modules/exercise/adapter/in"
	exerciseoutadapter "haverfit/internal/modules/exercise/adapter/out"
	exerciseservice "haverfit/internal/modules/exercise/service"
	exerciseusecase "haverfit/internal/modules/exercise/usecase"
	intakeinadapter "haverfit/internal/modules/intake/adapter/in"
	intakeoutadapter "haverfit/internal/modules/intake/adapter/out"
	intakeservice "haverfit/internal/modules/intake/service"
	intakeusecase "haverfit/internal/modules/intake/usecase"
	nutritioninadapter "haverfit/internal/modules/nutrition/adapter/in"
	nutritionusecase "haverfit/internal/modules/nutrition/usecase"
	reportinadapter "haverfit/internal/modules/report/adapter/in"
	reportoutadapter "haverfit/internal/modules/report/adapter/out"
	reportservice "haverfit/internal/modules/report/service"
	reportusecase "haverfit/internal/modules/report/usecase"
	"haverfit/internal/platform/clock"
	"haverfit/internal/platform/config"
	"haverfit/internal/platform/id"
	"haverfit/internal/ui/browse"
	"haverfit/internal/ui/console"
)

type App struct {
	NutritionCLI nutritioninadapter.CLIHandler
	CatalogCLI   cataloginadapter.CLIHandler
	IntakeCLI    intakeinadapter.CLIHandler
	AdviceCLI    adviceinadapter.CLIHandler
	ExerciseCLI  exerciseinadapter.CLIHandler
	ReportCLI    reportinadapter.CLIHandler

	foodIndex *catalogoutadapter.SQLiteFoodIndex
}

// New wires the application. Nothing is opened here; the food index
// database is created on its first query.
func New(cfg config.Config) *App {
	foodIndex := catalogoutadapter.NewSQLiteFoodIndex(cfg.DBPath)
	catalogSvc := catalogservice.NewCatalogService(catalogoutadapter.NewFlatFileFoodStore(cfg.FoodPath), foodIndex)
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	intakeUC := intakeusecase.NewInteractor(intakeservice.NewIntakeService(
		intakeoutadapter.NewCatalogFoodSource(catalogUC),
	))

	exerciseUC := exerciseusecase.NewInteractor(exerciseservice.NewExerciseService(
		exerciseoutadapter.NewFlatFileExerciseStore(cfg.ExercisePath),
	))

	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		clock.SystemClock{},
		id.UUID{},
		reportoutadapter.NewYAMLReportStore(),
	))

	return &App{
		NutritionCLI: nutritioninadapter.NewCLIHandler(nutritionusecase.NewInteractor()),
		CatalogCLI:   cataloginadapter.NewCLIHandler(catalogUC),
		IntakeCLI:    intakeinadapter.NewCLIHandler(intakeUC),
		AdviceCLI:    adviceinadapter.NewCLIHandler(adviceusecase.NewInteractor()),
		ExerciseCLI:  exerciseinadapter.NewCLIHandler(exerciseUC),
		ReportCLI:    reportinadapter.NewCLIHandler(reportUC),
		foodIndex:    foodIndex,
	}
}

// Close releases the food index database if it was opened.
func (a *App) Close() error {
	return a.foodIndex.Close()
}

// RunSession runs the interactive console session. reportPath may be empty.
func RunSession(ctx context.Context, app *App, in io.Reader, out io.Writer, reportPath string) error {
	ports := console.Ports{
		Nutrition: app.NutritionCLI,
		Catalog:   app.CatalogCLI,
		Intake:    app.IntakeCLI,
		Advice:    app.AdviceCLI,
		Exercise:  app.ExerciseCLI,
		Report:    app.ReportCLI,
	}
	var opts []console.Option
	if reportPath != "" {
		opts = append(opts, console.WithReport(reportPath))
	}
	return console.New(ports, in, out, opts...).Run(ctx)
}

func RunBrowse(ctx context.Context, app *App) error {
	return browse.Run(ctx, app.CatalogCLI)
}
