package domain

import (
	"fmt"
	"iter"
	"strconv"
)

// Catalog is the in-memory, insertion-ordered set of foods for a session.
type Catalog struct {
	foods []Food
	index map[string]int
}

func NewCatalog(foods []Food) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(foods))}
	for _, food := range foods {
		if err := c.Append(food); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.foods) }

// All returns a copy of the foods in file order.
func (c *Catalog) All() []Food {
	out := make([]Food, len(c.foods))
	copy(out, c.foods)
	return out
}

func (c *Catalog) Find(label string) (Food, bool) {
	i, ok := c.index[label]
	if !ok {
		return Food{}, false
	}
	return c.foods[i], true
}

func (c *Catalog) Has(label string) bool {
	_, ok := c.index[label]
	return ok
}

func (c *Catalog) Last() (Food, bool) {
	if len(c.foods) == 0 {
		return Food{}, false
	}
	return c.foods[len(c.foods)-1], true
}

// NextLabel is the label the next user-added food gets. It follows the last
// row; when that label is already taken further up the table, it moves past
// the highest user label instead.
func (c *Catalog) NextLabel() string {
	last, _ := c.Last()
	label := NextUserLabel(last.Label)
	if !c.Has(label) {
		return label
	}
	highest := 0
	for _, food := range c.foods {
		if category, n, err := ParseLabel(food.Label); err == nil && category == UserAdded && n > highest {
			highest = n
		}
	}
	return string(UserAdded) + strconv.Itoa(highest+1)
}

func (c *Catalog) Append(food Food) error {
	if _, dup := c.index[food.Label]; dup {
		return fmt.Errorf("duplicate food label %q", food.Label)
	}
	c.index[food.Label] = len(c.foods)
	c.foods = append(c.foods, food)
	return nil
}

// Entry is one step of a listing. Header is set on the first food of each
// category (B1, L1, D1, U1).
type Entry struct {
	Header string
	Food   Food
}

func (c *Catalog) Listing() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, food := range c.foods {
			entry := Entry{Food: food}
			if category, n, err := ParseLabel(food.Label); err == nil && n == 1 {
				entry.Header = category.Title()
			}
			if !yield(entry) {
				return
			}
		}
	}
}
