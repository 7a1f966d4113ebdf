package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"haverfit/internal/platform/config"
)

func TestNewDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.FoodPath != filepath.Join(dir, "food_nutrition.csv") {
		t.Fatalf("unexpected food path %s", cfg.FoodPath)
	}
	if cfg.ExercisePath != filepath.Join(dir, "exercises.csv") {
		t.Fatalf("unexpected exercise path %s", cfg.ExercisePath)
	}
	if cfg.DBPath != filepath.Join(dir, ".haverfit", "haverfit.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestNewReadsYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := "food_file: foods.csv\nexercise_file: /abs/ex.csv\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HAVERFIT_LOG_FORMAT", "json")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.FoodPath != filepath.Join(dir, "foods.csv") {
		t.Fatalf("unexpected food path %s", cfg.FoodPath)
	}
	if cfg.ExercisePath != "/abs/ex.csv" {
		t.Fatalf("absolute path should be kept, got %s", cfg.ExercisePath)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestNewLoadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HAVERFIT_DB_FILE", "")
	_ = os.Unsetenv("HAVERFIT_DB_FILE")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HAVERFIT_DB_FILE=index.db\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "index.db") {
		t.Fatalf("expected .env override, got %s", cfg.DBPath)
	}
}

func TestNewRequiresDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty data dir should fail")
	}
}
