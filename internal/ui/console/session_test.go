package console_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"haverfit/internal/bootstrap"
	nutrition "haverfit/internal/modules/nutrition/domain"
	"haverfit/internal/platform/config"
	"haverfit/internal/ui/prompt"
)

const foodCSV = `label, name, calories, carbohydrates, protein, fat
B1, Oatmeal, 150, 27, 5, 3
B2, Scrambled Eggs, 200, 2, 14, 15
L1, Turkey Sandwich, 350, 40, 24, 9
D1, Grilled Chicken, 280, 0, 40, 12
`

const exerciseCSV = `label, name, 125, 155, 185
1, Running, 480, 600, 710
2, Cycling, 240, 298, 355
`

func newApp(t *testing.T, withFoods bool) (string, *bootstrap.App) {
	t.Helper()
	dir := t.TempDir()
	if withFoods {
		if err := os.WriteFile(filepath.Join(dir, "food_nutrition.csv"), []byte(foodCSV), 0o644); err != nil {
			t.Fatalf("write foods: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "exercises.csv"), []byte(exerciseCSV), 0o644); err != nil {
		t.Fatalf("write exercises: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	app := bootstrap.New(cfg)
	t.Cleanup(func() { _ = app.Close() })
	return dir, app
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestFullSession(t *testing.T) {
	t.Parallel()
	dir, app := newApp(t, true)
	reportPath := filepath.Join(dir, "reports", "session.yaml")
	in := script(
		"abc", "5", "n", "30",
		"robot", "Male",
		"7", "1",
		"3", "2",
		"180", "75",
		"y", "Toast", "80", "14.5", "3", "1",
		"n",
		"B1", "Z9-1", "B1-x", "B1-0", "B1-2", "U1-12", "D1-3", "",
		"y", "1", "160",
	)
	var out bytes.Buffer
	if err := bootstrap.RunSession(context.Background(), app, in, &out, reportPath); err != nil {
		t.Fatalf("run session: %v\n%s", err, out.String())
	}
	text := out.String()
	for _, want := range []string{
		"Welcome to Haverfit.",
		"Please enter a number.",
		"You have entered 5 as your age. Is that correct? (y/n): ",
		"Enter either male or female.",
		"1. Sedentary: little to no exercise, desk job",
		"Activity level has to be one of the 5 values above.",
		"Please enter 1 or 2 as your response.",
		"Calories: 2076",
		"BREAKFAST",
		"D1: Grilled Chicken",
		"U1: Toast was added.",
		"Only the food label and serving amount should be entered",
		"The label Z9 does not exist. Please enter an acceptable label.",
		"The value for amount of serving should be a number.",
		"The value for amount of serving should be a positive number.",
		"Calories: 2100.0",
		"You are consuming 24 calories of calories more than you should.",
		"Grilled Chicken has/have the highest calorie content with 280 calories",
		"grams of carbohydrates less than you should.",
		"Oatmeal has/have the highest carbohydrate content with 27 grams",
		"Congratulations! You are consuming the right amount of proteins!",
		"Congratulations! You are consuming the right amount of fats!",
		"LIST OF EXERCISES",
		"2: Cycling",
		"To burn your excess calories, you must do Running for 2 minutes",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}

	foods, err := os.ReadFile(filepath.Join(dir, "food_nutrition.csv"))
	if err != nil {
		t.Fatalf("read foods: %v", err)
	}
	if string(foods) != foodCSV+"U1, Toast, 80, 14.5, 3, 1\n" {
		t.Fatalf("food table not appended in place:\n%s", foods)
	}

	raw, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var doc struct {
		ID     string `yaml:"id"`
		Totals struct {
			Calories float64 `yaml:"calories"`
		} `yaml:"totals"`
		Advice map[string]string `yaml:"advice"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if doc.ID == "" || doc.Totals.Calories != 2100 || doc.Advice["calorie"] != "excess" || doc.Advice["protein"] != "on-target" {
		t.Fatalf("unexpected report: %+v", doc)
	}
}

func TestSessionStopsOnImpossibleBMR(t *testing.T) {
	t.Parallel()
	_, app := newApp(t, true)
	in := script("90", "female", "1", "1", "2", "3")
	err := bootstrap.RunSession(context.Background(), app, in, &bytes.Buffer{}, "")
	var bmrErr *nutrition.BMRError
	if !errors.As(err, &bmrErr) {
		t.Fatalf("expected BMRError, got %v", err)
	}
	if !strings.Contains(err.Error(), "The age you entered was 90, the weight was 3, and the height was 2") {
		t.Fatalf("diagnostic should name the inputs: %v", err)
	}
}

func TestSessionReportsMissingFoodTable(t *testing.T) {
	t.Parallel()
	_, app := newApp(t, false)
	in := script("30", "female", "2", "2", "165", "60")
	var out bytes.Buffer
	if err := bootstrap.RunSession(context.Background(), app, in, &out, ""); err != nil {
		t.Fatalf("missing food table should end the session quietly, got %v", err)
	}
	if !strings.Contains(out.String(), "food_nutrition.csv does not exist") {
		t.Fatalf("missing table not reported:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Enter label and serving") {
		t.Fatalf("session should stop before the ledger")
	}
}

func TestSessionEndsOnClosedInput(t *testing.T) {
	t.Parallel()
	_, app := newApp(t, true)
	err := bootstrap.RunSession(context.Background(), app, strings.NewReader("30\n"), &bytes.Buffer{}, "")
	if !errors.Is(err, prompt.ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestSessionWithoutExcessSkipsExercise(t *testing.T) {
	t.Parallel()
	_, app := newApp(t, true)
	in := script("30", "male", "1", "2", "180", "75", "n", "B1-1", "")
	var out bytes.Buffer
	if err := bootstrap.RunSession(context.Background(), app, in, &out, ""); err != nil {
		t.Fatalf("run session: %v", err)
	}
	if !strings.Contains(out.String(), "calories of calories less than you should.") {
		t.Fatalf("expected calorie deficit advice:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Do you wish to learn about exercises") {
		t.Fatalf("exercise advice should only follow a calorie excess")
	}
}
