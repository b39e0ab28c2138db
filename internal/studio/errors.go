package studio

// ValidationError reports a request the orchestrator refused before starting
// any async work. The message is user-facing Portuguese copy.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(message string) error {
	return &ValidationError{Message: message}
}
