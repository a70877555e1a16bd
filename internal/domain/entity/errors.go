package entity

// ValidationError reports a required field that is blank or fails its format
// pattern. It carries the field name so callers can correct input without
// reconstructing the surrounding object graph.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
