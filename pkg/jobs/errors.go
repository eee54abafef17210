package jobs

import "fmt"

// ValidationError reports a field that a (trigger, task) combination
// requires but the intent left empty. Field is the wire name of the field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing required field %s", e.Field)
	}
	return fmt.Sprintf("missing required field %s: %s", e.Field, e.Reason)
}

func missing(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
