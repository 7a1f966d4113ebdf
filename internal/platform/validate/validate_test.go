package validate_test

import (
	"errors"
	"strings"
	"testing"

	apperrors "haverfit/internal/platform/errors"
	"haverfit/internal/platform/validate"
)

type sample struct {
	Name  string  `validate:"required"`
	Grams float64 `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	t.Parallel()
	if err := validate.Struct(sample{Name: "Oatmeal", Grams: 3}); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}
	err := validate.Struct(sample{Name: "Oatmeal", Grams: -1})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "grams fails gte=0") {
		t.Fatalf("unexpected message: %v", err)
	}
}
