package service

// ValidationError reports a missing or malformed request field. The
// controllers map it to HTTP 400 with the message as the plain-text body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
