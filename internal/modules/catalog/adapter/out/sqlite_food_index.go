package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"haverfit/internal/modules/catalog/domain"
	"haverfit/internal/platform/logging"

	_ "modernc.org/sqlite"
)

// SQLiteFoodIndex mirrors the flat food file into a queryable table.
// The flat file stays the source of truth. The database is opened on first
// use, so commands that never query it leave the data directory untouched.
type SQLiteFoodIndex struct {
	path string
	db   *sql.DB
}

func NewSQLiteFoodIndex(dbPath string) *SQLiteFoodIndex {
	return &SQLiteFoodIndex{path: dbPath}
}

func (s *SQLiteFoodIndex) open(ctx context.Context) (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	logging.FromContext(ctx).Debug("food index opened", "path", s.path)
	s.db = db
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS foods (
  label TEXT PRIMARY KEY,
  category TEXT NOT NULL,
  name TEXT NOT NULL,
  calories REAL NOT NULL,
  carb_g REAL NOT NULL,
  protein_g REAL NOT NULL,
  fat_g REAL NOT NULL
);
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create foods table: %w", err)
	}
	return nil
}

func (s *SQLiteFoodIndex) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteFoodIndex) Reset(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM foods`); err != nil {
		return fmt.Errorf("reset foods: %w", err)
	}
	return nil
}

func (s *SQLiteFoodIndex) UpsertFood(ctx context.Context, food domain.Food) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	const stmt = `
INSERT INTO foods (label, category, name, calories, carb_g, protein_g, fat_g)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(label) DO UPDATE SET
  category=excluded.category,
  name=excluded.name,
  calories=excluded.calories,
  carb_g=excluded.carb_g,
  protein_g=excluded.protein_g,
  fat_g=excluded.fat_g;
`
	category, _, _ := domain.ParseLabel(food.Label)
	_, err = db.ExecContext(ctx, stmt,
		food.Label,
		string(category),
		food.Name,
		food.Calories,
		food.Carb,
		food.Protein,
		food.Fat,
	)
	if err != nil {
		return fmt.Errorf("upsert food %s: %w", food.Label, err)
	}
	return nil
}

func (s *SQLiteFoodIndex) Count(ctx context.Context) (int, error) {
	db, err := s.open(ctx)
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM foods`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return n, nil
}

var sortColumns = map[domain.SortKey]string{
	domain.SortName:     "name COLLATE NOCASE",
	domain.SortCalories: "calories",
	domain.SortCarb:     "carb_g",
	domain.SortProtein:  "protein_g",
	domain.SortFat:      "fat_g",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *SQLiteFoodIndex) Search(ctx context.Context, query domain.FoodQuery) ([]domain.Food, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	var (
		where []string
		args  []any
	)
	if query.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(query.Category))
	}
	if text := strings.TrimSpace(query.Text); text != "" {
		where = append(where, `name LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(text)+"%")
	}
	if query.MaxCalories > 0 {
		where = append(where, "calories <= ?")
		args = append(args, query.MaxCalories)
	}

	var b strings.Builder
	b.WriteString("SELECT label, name, calories, carb_g, protein_g, fat_g FROM foods")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY ")
	if column, ok := sortColumns[query.SortBy]; ok {
		b.WriteString(column)
		if query.Descending {
			b.WriteString(" DESC")
		}
		b.WriteString(", ")
	}
	b.WriteString("rowid")
	if query.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, query.Limit)
	}

	rows, err := db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	defer rows.Close()
	var foods []domain.Food
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(&food.Label, &food.Name, &food.Calories, &food.Carb, &food.Protein, &food.Fat); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	return foods, nil
}
