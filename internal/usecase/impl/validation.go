package impl

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "tracker/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals
var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON field names so messages match what callers submitted
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// inputViolations runs struct validation and returns one message per failed
// rule. A non-validation error (e.g. a nil input) is returned as is.
func inputViolations(input any) ([]string, error) {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, errors.Wrap(err, "failed to validate input")
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, describeFieldError(fe))
	}

	return violations, nil
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	// drop the struct name prefix, keep the JSON path
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the '%s' rule", field, fe.Tag())
	}
}

// routeInputError validates the shape of a route submission.
func routeInputError(input any) error {
	violations, err := inputViolations(input)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return domainerrors.NewValidationError(violations)
	}

	return nil
}

// positionInputError validates the shape of a position report.
func positionInputError(input any) error {
	violations, err := inputViolations(input)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return domainerrors.ErrInvalidPosition.WithDetails(strings.Join(violations, "; "))
	}

	return nil
}
