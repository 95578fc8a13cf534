// Package validation checks forms before they are sent to the backend.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/repairctl/internal/model"
)

var (
	once     sync.Once
	instance *validator.Validate
	initErr  error
)

// RegisterCustomValidators registers marketplace-specific rules on v.
func RegisterCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("problem_category", validateProblemCategory); err != nil {
		return fmt.Errorf("failed to register problem_category validator: %w", err)
	}
	return nil
}

func validateProblemCategory(fl validator.FieldLevel) bool {
	c := model.ProblemCategory(fl.Field().String())
	for _, known := range model.ProblemCategories {
		if c == known {
			return true
		}
	}
	return false
}

func get() (*validator.Validate, error) {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report JSON field names so messages match what the backend calls them.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		if err := RegisterCustomValidators(v); err != nil {
			initErr = err
			return
		}
		instance = v
	})
	return instance, initErr
}

// Struct validates form and returns one joined, human readable error.
func Struct(form any) error {
	v, err := get()
	if err != nil {
		return err
	}
	if err := v.Struct(form); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors converts validator.ValidationErrors to user-friendly messages.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatSingleValidationError(e))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

func formatSingleValidationError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, e.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain digits only", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, e.Param())
	case "problem_category":
		return fmt.Sprintf("%s must be one of: %s", field, categoryList())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

func categoryList() string {
	names := make([]string, len(model.ProblemCategories))
	for i, c := range model.ProblemCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
