package extraction

import (
	"errors"
	"fmt"
)

// Common extraction errors
var (
	// ErrEmptyDocument is returned when the input text is absent or its
	// trimmed length is below MinDocumentLength. This is the only
	// condition under which extraction refuses to produce a record;
	// every other deviation degrades to empty fields and a lower
	// confidence score.
	ErrEmptyDocument = errors.New("document text is empty or too short to be processed")
)

// ExtractionError wraps errors with additional context about the extraction failure.
type ExtractionError struct {
	// Op is the operation that failed (e.g., "Extract").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("extraction: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("extraction: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *ExtractionError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewExtractionError creates a new ExtractionError with the specified operation and underlying error.
func NewExtractionError(op string, err error, details string) *ExtractionError {
	return &ExtractionError{
		Op:      op,
		Err:     err,
		Details: details,
	}
}
