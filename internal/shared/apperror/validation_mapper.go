package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// allowed_hours_per_day -> Allowed Hours Per Day
func formatFieldName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// ValidationDetails turns a binding error into one readable line per field.
// Errors that did not come from the validator (bad JSON, wrong types) are
// returned as their own message.
func ValidationDetails(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(errs))
	for _, e := range errs {
		field := formatFieldName(e.Field())
		switch e.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", field))
		case "uuid":
			details = append(details, fmt.Sprintf("%s must be a valid UUID", field))
		case "min", "gt", "gte":
			details = append(details, fmt.Sprintf("%s must be %s %s", field, comparisonWord(e.Tag()), e.Param()))
		default:
			details = append(details, fmt.Sprintf("%s is invalid", field))
		}
	}
	return details
}

func comparisonWord(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}

// MapValidationError wraps a binding error as ErrInvalidInput with the
// per-field lines as its cause.
func MapValidationError(err error) *AppError {
	return ErrInvalidInput.WithCause(errors.New(strings.Join(ValidationDetails(err), "; ")))
}
