package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "haverfit/internal/platform/errors"
)

var std = validator.New(validator.WithRequiredStructEnabled())

// Struct checks the `validate` tags of v. Failures wrap ErrInvalidInput and
// name the first offending field.
func Struct(v any) error {
	err := std.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	first := errs[0]
	rule := first.Tag()
	if first.Param() != "" {
		rule += "=" + first.Param()
	}
	return fmt.Errorf("%w: %s fails %s", apperrors.ErrInvalidInput, strings.ToLower(first.Field()), rule)
}
