package source

import (
	"errors"
	"fmt"
)

// ErrorCategory is the normalised failure taxonomy for partner sources.
type ErrorCategory string

const (
	// ErrorTimeout indicates the source took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the payload could not be decoded
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates the API key was refused
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorOutage indicates the source is unreachable or failing
	ErrorOutage ErrorCategory = "outage"

	// ErrorNotFound indicates the dataset or file does not exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorInternal indicates an unexpected local failure
	ErrorInternal ErrorCategory = "internal"
)

// SourceError wraps source failures with a category.
type SourceError struct {
	Category   ErrorCategory
	Source     string
	Message    string
	Underlying error
}

func (e *SourceError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("source %s [%s]: %s: %v", e.Source, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("source %s [%s]: %s", e.Source, e.Category, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Underlying
}

func newError(category ErrorCategory, source, message string, underlying error) *SourceError {
	return &SourceError{
		Category:   category,
		Source:     source,
		Message:    message,
		Underlying: underlying,
	}
}

// GetCategory extracts the category from an error, defaulting to internal.
func GetCategory(err error) ErrorCategory {
	var se *SourceError
	if errors.As(err, &se) {
		return se.Category
	}
	return ErrorInternal
}
