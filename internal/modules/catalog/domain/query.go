package domain

import (
	"fmt"
	"strings"
)

// SortKey orders search results. The zero value keeps table order.
type SortKey string

const (
	SortTableOrder SortKey = ""
	SortName       SortKey = "name"
	SortCalories   SortKey = "calories"
	SortCarb       SortKey = "carbohydrate"
	SortProtein    SortKey = "protein"
	SortFat        SortKey = "fat"
)

// FoodQuery filters the indexed catalog. Zero fields match everything.
type FoodQuery struct {
	Text        string
	Category    Category
	MaxCalories float64
	SortBy      SortKey
	Descending  bool
	Limit       int
}

// ParseCategory accepts a label prefix ("b") or a category title
// ("breakfast"). An empty string means any category.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, c := range []Category{Breakfast, Lunch, Dinner, UserAdded} {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Title()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown food category %q", s)
}
