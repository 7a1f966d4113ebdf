package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	foods := "label, name, calories, carbohydrates, protein, fat\nB1, Oatmeal, 150, 27, 5, 3\nL1, Turkey Sandwich, 350, 40, 24, 9\nD1, Grilled Chicken, 280, 0, 40, 12"
	if err := os.WriteFile(filepath.Join(dir, "food_nutrition.csv"), []byte(foods), 0o644); err != nil {
		t.Fatalf("write foods: %v", err)
	}
	exercises := "label, name, 125, 155, 185\n1, Running, 480, 600, 710\n"
	if err := os.WriteFile(filepath.Join(dir, "exercises.csv"), []byte(exercises), 0o644); err != nil {
		t.Fatalf("write exercises: %v", err)
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFoodsAddListAndReindex(t *testing.T) {
	t.Parallel()
	dir := writeFixtures(t)

	out, err := run(t, "--data", dir, "foods", "add", "--name", "Fruit Salad", "--calories", "90", "--carbs", "22", "--protein", "1", "--fat", "0.5")
	if err != nil {
		t.Fatalf("foods add: %v", err)
	}
	if strings.TrimSpace(out) != "added U1: Fruit Salad" {
		t.Fatalf("unexpected add output %q", out)
	}

	out, err = run(t, "--data", dir, "foods", "list")
	if err != nil {
		t.Fatalf("foods list: %v", err)
	}
	for _, want := range []string{"BREAKFAST\nB1: Oatmeal", "DINNER\nD1: Grilled Chicken", "ADDITIONAL DISHES\nU1: Fruit Salad (90 cal, 22g carbs, 1g protein, 0.5g fat)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("listing missing %q:\n%s", want, out)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, "food_nutrition.csv"))
	if err != nil {
		t.Fatalf("read foods: %v", err)
	}
	if !strings.HasSuffix(string(raw), "D1, Grilled Chicken, 280, 0, 40, 12\nU1, Fruit Salad, 90, 22, 1, 0.5\n") {
		t.Fatalf("unexpected food table:\n%s", raw)
	}

	out, err = run(t, "--data", dir, "reindex")
	if err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if strings.TrimSpace(out) != "reindex completed: 4 foods" {
		t.Fatalf("unexpected reindex output %q", out)
	}
}

func TestFoodsAddRejectsComma(t *testing.T) {
	t.Parallel()
	dir := writeFixtures(t)
	if _, err := run(t, "--data", dir, "foods", "add", "--name", "Rice, fried", "--calories", "200"); err == nil {
		t.Fatalf("expected a comma in the name to be rejected")
	}
}

func TestExercisesList(t *testing.T) {
	t.Parallel()
	dir := writeFixtures(t)
	out, err := run(t, "--data", dir, "exercises", "list")
	if err != nil {
		t.Fatalf("exercises list: %v", err)
	}
	if strings.TrimSpace(out) != "1: Running" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestMissingFoodTableFailsList(t *testing.T) {
	t.Parallel()
	if _, err := run(t, "--data", t.TempDir(), "foods", "list"); err == nil || !strings.Contains(err.Error(), "catalog unavailable") {
		t.Fatalf("expected catalog unavailable, got %v", err)
	}
}

func TestFoodsSearchBuildsIndexOnDemand(t *testing.T) {
	t.Parallel()
	dir := writeFixtures(t)
	dbDir := filepath.Join(dir, ".haverfit")

	if _, err := run(t, "--data", dir, "foods", "list"); err != nil {
		t.Fatalf("foods list: %v", err)
	}
	if _, err := os.Stat(dbDir); !os.IsNotExist(err) {
		t.Fatalf("listing must not create the index directory, stat err = %v", err)
	}

	out, err := run(t, "--data", dir, "foods", "search", "--sort", "protein", "--desc", "--limit", "2")
	if err != nil {
		t.Fatalf("foods search: %v", err)
	}
	want := "D1: Grilled Chicken (280 cal, 0g carbs, 40g protein, 12g fat)\nL1: Turkey Sandwich (350 cal, 40g carbs, 24g protein, 9g fat)\n"
	if out != want {
		t.Fatalf("unexpected search output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dbDir, "haverfit.db")); err != nil {
		t.Fatalf("search should create the index: %v", err)
	}

	if _, err := run(t, "--data", dir, "foods", "add", "--name", "Chicken Soup", "--calories", "120", "--protein", "9"); err != nil {
		t.Fatalf("foods add: %v", err)
	}
	out, err = run(t, "--data", dir, "foods", "search", "chick", "--max-calories", "200")
	if err != nil {
		t.Fatalf("foods search after add: %v", err)
	}
	if strings.TrimSpace(out) != "U1: Chicken Soup (120 cal, 0g carbs, 9g protein, 0g fat)" {
		t.Fatalf("index should pick up the added food:\n%s", out)
	}

	out, err = run(t, "--data", dir, "foods", "search", "--category", "lunch")
	if err != nil {
		t.Fatalf("foods search by category: %v", err)
	}
	if !strings.HasPrefix(out, "L1: Turkey Sandwich") || strings.Count(out, "\n") != 1 {
		t.Fatalf("unexpected category search:\n%s", out)
	}

	out, err = run(t, "--data", dir, "foods", "search", "pizza")
	if err != nil || strings.TrimSpace(out) != "no matching foods" {
		t.Fatalf("expected no matches, got %q %v", out, err)
	}
	if _, err := run(t, "--data", dir, "foods", "search", "--sort", "sugar"); err == nil {
		t.Fatalf("expected an unknown sort key to be rejected")
	}
}
