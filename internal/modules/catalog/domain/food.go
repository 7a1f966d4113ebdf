package domain

import (
	"fmt"
	"strconv"
	"strings"

	nutrition "haverfit/internal/modules/nutrition/domain"
	"haverfit/internal/platform/validate"
)

// Category is the label prefix of a food.
type Category string

const (
	Breakfast Category = "B"
	Lunch     Category = "L"
	Dinner    Category = "D"
	UserAdded Category = "U"
)

func (c Category) Title() string {
	switch c {
	case Breakfast:
		return "BREAKFAST"
	case Lunch:
		return "LUNCH"
	case Dinner:
		return "DINNER"
	case UserAdded:
		return "ADDITIONAL DISHES"
	default:
		return ""
	}
}

// Food is one catalog row. Nutrient values are per serving.
type Food struct {
	Label    string  `validate:"required"`
	Name     string  `validate:"required,excludesall=0x2C"`
	Calories float64 `validate:"gte=0"`
	Carb     float64 `validate:"gte=0"`
	Protein  float64 `validate:"gte=0"`
	Fat      float64 `validate:"gte=0"`
}

func (f Food) Validate() error {
	return validate.Struct(f)
}

func (f Food) Nutrients() nutrition.Nutrients {
	return nutrition.Nutrients{Calories: f.Calories, Carb: f.Carb, Protein: f.Protein, Fat: f.Fat}
}

// ParseLabel splits a label such as "D12" into its category and number.
func ParseLabel(label string) (Category, int, error) {
	if len(label) < 2 {
		return "", 0, fmt.Errorf("malformed label %q", label)
	}
	category := Category(strings.ToUpper(label[:1]))
	if category.Title() == "" {
		return "", 0, fmt.Errorf("unknown category in label %q", label)
	}
	n, err := strconv.Atoi(label[1:])
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("malformed number in label %q", label)
	}
	return category, n, nil
}

// NextUserLabel returns the label a user-added food receives when last is
// the label of the final catalog row. User labels count up from U1; any
// other predecessor restarts the sequence at U1.
func NextUserLabel(last string) string {
	category, n, err := ParseLabel(last)
	if err != nil || category != UserAdded {
		return string(UserAdded) + "1"
	}
	return string(UserAdded) + strconv.Itoa(n+1)
}
