package rescisao

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput covers every rejected request: missing fields,
	// malformed dates, non-numeric or negative amounts. A rejected request
	// never produces a partial settlement.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField is wrapped by InputError when a required key is absent.
	ErrMissingField = errors.New("campo obrigatório")

	// ErrNoData is returned when the request body carries no JSON object.
	ErrNoData = errors.New("no data provided")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InputError names the offending field and the underlying parse error.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap exposes both the sentinel and the cause, so errors.Is works for
// ErrInvalidInput as well as for the specific cause (e.g. ErrMissingField).
func (e *InputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

func missing(field string) *InputError {
	return &InputError{Field: field, Err: ErrMissingField}
}

func invalid(field string, format string, args ...any) *InputError {
	return &InputError{Field: field, Err: fmt.Errorf(format, args...)}
}

// IsInputError returns true if the error is a rejected request.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
