package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"haverfit/internal/bootstrap"
	catalogdto "haverfit/internal/modules/catalog/dto"
	"haverfit/internal/platform/config"
	"haverfit/internal/platform/id"
	"haverfit/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir, reportPath string

	root := &cobra.Command{
		Use:           "haverfit",
		Short:         "Daily nutrition calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd.Context(), dataDir)
			if err != nil {
				return err
			}
			defer closeApp(ctx, app)
			return bootstrap.RunSession(ctx, app, cmd.InOrStdin(), cmd.OutOrStdout(), reportPath)
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".", "directory holding the food and exercise tables")
	root.Flags().StringVar(&reportPath, "report", "", "write a YAML session report to this path")

	root.AddCommand(newFoodsCmd(&dataDir))
	root.AddCommand(newExercisesCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newBrowseCmd(&dataDir))
	return root
}

// loadApp reads configuration and returns a context carrying the run logger.
// Callers close the returned app.
func loadApp(ctx context.Context, dataDir string) (context.Context, *bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr).With("run_id", id.UUID{}.New())
	ctx = logging.WithLogger(ctx, logger)
	app := bootstrap.New(cfg)
	logger.Debug("configuration loaded", "food_file", cfg.FoodPath, "exercise_file", cfg.ExercisePath, "db_file", cfg.DBPath)
	return ctx, app, nil
}

func closeApp(ctx context.Context, app *bootstrap.App) {
	if err := app.Close(); err != nil {
		logging.FromContext(ctx).Warn("close app", "error", err)
	}
}

func printFood(out io.Writer, f catalogdto.FoodOutput) {
	_, _ = fmt.Fprintf(out, "%s: %s (%g cal, %gg carbs, %gg protein, %gg fat)\n", f.Label, f.Name, f.Calories, f.Carb, f.Protein, f.Fat)
}

func newFoodsCmd(dataDir *string) *cobra.Command {
	foods := &cobra.Command{Use: "foods", Short: "Food catalog operations"}

	foods.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List foods grouped by meal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			defer closeApp(ctx, app)
			listing, err := app.CatalogCLI.Listing(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			first := true
			for entry := range listing {
				if entry.Header != "" {
					if !first {
						_, _ = fmt.Fprintln(out)
					}
					_, _ = fmt.Fprintln(out, entry.Header)
				}
				first = false
				printFood(out, entry.Food)
			}
			return nil
		},
	})

	var name string
	var calories, carb, protein, fat float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Append a user dish to the food table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			defer closeApp(ctx, app)
			food, err := app.CatalogCLI.AddFood(ctx, name, calories, carb, protein, fat)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s\n", food.Label, food.Name)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "dish name")
	addCmd.Flags().Float64Var(&calories, "calories", 0, "calories per serving")
	addCmd.Flags().Float64Var(&carb, "carbs", 0, "carbohydrate grams per serving")
	addCmd.Flags().Float64Var(&protein, "protein", 0, "protein grams per serving")
	addCmd.Flags().Float64Var(&fat, "fat", 0, "fat grams per serving")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("calories")

	foods.AddCommand(addCmd)
	foods.AddCommand(newFoodsSearchCmd(dataDir))
	return foods
}

func newFoodsSearchCmd(dataDir *string) *cobra.Command {
	var input catalogdto.SearchInput
	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Query the food index by name, meal and nutrients",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			defer closeApp(ctx, app)
			if len(args) == 1 {
				input.Text = args[0]
			}
			foods, err := app.CatalogCLI.SearchFoods(ctx, input)
			if err != nil {
				return err
			}
			if len(foods) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no matching foods")
				return nil
			}
			for _, food := range foods {
				printFood(cmd.OutOrStdout(), food)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Category, "category", "", "meal category: B, L, D, U or its title")
	cmd.Flags().Float64Var(&input.MaxCalories, "max-calories", 0, "only foods at or under this many calories per serving")
	cmd.Flags().StringVar(&input.SortBy, "sort", "", "order by name, calories, carbohydrate, protein or fat")
	cmd.Flags().BoolVar(&input.Descending, "desc", false, "reverse the sort order")
	cmd.Flags().IntVar(&input.Limit, "limit", 0, "maximum number of foods to print")
	return cmd
}

func newExercisesCmd(dataDir *string) *cobra.Command {
	exercises := &cobra.Command{Use: "exercises", Short: "Exercise catalog operations"}
	exercises.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List exercises",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			defer closeApp(ctx, app)
			items, err := app.ExerciseCLI.ListExercises(ctx)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no exercises")
				return nil
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", item.Label, item.Name)
			}
			return nil
		},
	})
	return exercises
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite food index from the food table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			defer closeApp(ctx, app)
			n, err := app.CatalogCLI.Reindex(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindex completed: %d foods\n", n)
			return nil
		},
	}
}

func newBrowseCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the food catalog in a terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, app, err := loadApp(cmd.Context(), *dataDir)
			if err != nil {
				return err
			}
			defer closeApp(ctx, app)
			return bootstrap.RunBrowse(ctx, app)
		},
	}
}
