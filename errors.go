package reup

import "fmt"

// CategoryConfigValidation tags errors caused by malformed user
// configuration, as opposed to runtime faults. Callers are expected to
// skip or flag the dependency; retrying with unchanged input cannot
// succeed.
const CategoryConfigValidation = "config-validation"

// ConfigValidationError reports a user-supplied configuration value the
// filter cannot interpret. Detect it with errors.As.
type ConfigValidationError struct {
	// Category is the fixed error category tag.
	Category string

	// Field names the offending configuration field.
	Field string

	// Message is a human-readable description embedding the offending value.
	Message string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Category, e.Field, e.Message)
}

func errInvalidAllowedVersions(expr string) *ConfigValidationError {
	return &ConfigValidationError{
		Category: CategoryConfigValidation,
		Field:    "allowedVersions",
		Message:  fmt.Sprintf("does not parse as a regex, version or range: %q", expr),
	}
}
