package booking

import "fmt"

// ValidationError is a recoverable, user-facing problem with a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors accumulates validation messages keyed by field name so a
// submitter sees every problem at once.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, ok := fe[field]; !ok {
		fe[field] = message
	}
}

func (fe FieldErrors) OK() bool {
	return len(fe) == 0
}
