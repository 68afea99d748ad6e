package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/logsrv-assist/src/internal/errors"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "filter_list":
		return "must contain at least one facility.severity selector (comma-separated)"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For templates/rulesets: the name of the item (e.g., "per_host", "listener[0]")
	FieldPath string // Dot-notation field path (e.g., "ruleset.0.protocol", "port")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

// Is lets errors.Is(err, errors.ErrValidation) match aggregated validation failures.
func (ve ValidationErrors) Is(target error) bool {
	return target == errors.ErrValidation
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("filter_list", validateFilterList); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: comma-separated list with at least one non-blank entry
func validateFilterList(fl validator.FieldLevel) bool {
	for _, entry := range strings.Split(fl.Field().String(), ",") {
		if strings.TrimSpace(entry) != "" {
			return true
		}
	}
	return false
}
