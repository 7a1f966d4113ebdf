package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const FileName = "haverfit.yaml"

type Config struct {
	DataDir      string `yaml:"-"`
	FoodPath     string `yaml:"food_file" env:"HAVERFIT_FOOD_FILE" env-default:"food_nutrition.csv"`
	ExercisePath string `yaml:"exercise_file" env:"HAVERFIT_EXERCISE_FILE" env-default:"exercises.csv"`
	DBPath       string `yaml:"db_file" env:"HAVERFIT_DB_FILE" env-default:".haverfit/haverfit.db"`

	Log struct {
		Level  string `yaml:"level" env:"LEVEL" env-default:"warn"`
		Format string `yaml:"format" env:"FORMAT" env-default:"text"`
	} `yaml:"log" env-prefix:"HAVERFIT_LOG_"`
}

// New reads <dataDir>/.env and <dataDir>/haverfit.yaml when present, applies
// HAVERFIT_* environment overrides and resolves file paths against dataDir.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	if err := godotenv.Load(filepath.Join(dataDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{}
	path := filepath.Join(dataDir, FileName)
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	cfg.DataDir = dataDir
	cfg.FoodPath = resolve(dataDir, cfg.FoodPath)
	cfg.ExercisePath = resolve(dataDir, cfg.ExercisePath)
	cfg.DBPath = resolve(dataDir, cfg.DBPath)
	return cfg, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
