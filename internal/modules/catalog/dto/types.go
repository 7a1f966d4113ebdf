package dto

type AddFoodInput struct {
	Name     string
	Calories float64
	Carb     float64
	Protein  float64
	Fat      float64
}

type FoodOutput struct {
	Label    string
	Name     string
	Category string
	Calories float64
	Carb     float64
	Protein  float64
	Fat      float64
}

// ListingEntry carries a category title on the first food of each category.
type ListingEntry struct {
	Header string
	Food   FoodOutput
}

// SearchInput filters and orders the indexed catalog. Zero fields match
// everything; SortBy empty keeps table order.
type SearchInput struct {
	Text        string
	Category    string
	MaxCalories float64 `validate:"gte=0"`
	SortBy      string  `validate:"omitempty,oneof=name calories carbohydrate protein fat"`
	Descending  bool
	Limit       int `validate:"gte=0"`
}
