package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EntrySeparator splits "B1-2.5" into label and servings.
const EntrySeparator = "-"

var (
	ErrEntryFormat   = errors.New("only the food label and serving amount should be entered")
	ErrUnknownLabel  = errors.New("unknown food label")
	ErrServingFormat = errors.New("the amount of serving should be a number")
	ErrServingRange  = errors.New("the amount of serving should be positive")
)

// ParseEntry splits a "label-servings" line. Label existence is checked by
// the caller.
func ParseEntry(text string) (string, float64, error) {
	label, amount, err := SplitEntry(text)
	if err != nil {
		return "", 0, err
	}
	servings, err := ParseServings(amount)
	if err != nil {
		return "", 0, err
	}
	return label, servings, nil
}

// SplitEntry returns the label and the unparsed serving text of a line.
func SplitEntry(text string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(text), EntrySeparator)
	if len(parts) != 2 {
		return "", "", ErrEntryFormat
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// ParseServings accepts a finite, strictly positive number.
func ParseServings(text string) (float64, error) {
	servings, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, ErrServingFormat
	}
	if !(servings > 0) || math.IsInf(servings, 0) {
		return 0, ErrServingRange
	}
	return servings, nil
}

// Ledger maps food labels to servings for one session. Setting a label
// twice keeps the later value.
type Ledger struct {
	servings map[string]float64
	order    []string
}

func NewLedger() *Ledger {
	return &Ledger{servings: map[string]float64{}}
}

func (l *Ledger) Set(label string, servings float64) error {
	if servings < 0 {
		return fmt.Errorf("%w: %s", ErrServingRange, label)
	}
	if _, seen := l.servings[label]; !seen {
		l.order = append(l.order, label)
	}
	l.servings[label] = servings
	return nil
}

func (l *Ledger) Servings(label string) (float64, bool) {
	v, ok := l.servings[label]
	return v, ok
}

func (l *Ledger) Len() int { return len(l.order) }

// Labels returns labels in first-entry order.
func (l *Ledger) Labels() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}
