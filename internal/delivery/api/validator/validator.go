// Package validator adapts go-playground/validator to echo and to the domain validation error.
package validator

import (
	"reflect"
	"strings"

	domainerrors "creatorhub/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: validate}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

// Validate checks i and returns a *domainerrors.ValidationError keyed by JSON field path.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate")
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldPath(fieldErr)] = message(fieldErr)
	}

	return domainerrors.NewValidationError(fields)
}

// fieldPath drops the root struct name: "UpdateProfileInput.social_links[instagram].url"
// becomes "social_links.instagram.url".
func fieldPath(fieldErr playground.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		namespace = rest
	}

	replacer := strings.NewReplacer("[", ".", "]", "")

	return replacer.Replace(namespace)
}

func message(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return "must be at least " + fieldErr.Param() + " characters"
		}

		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	default:
		return "is invalid"
	}
}
