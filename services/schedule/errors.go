package schedule

import (
	"errors"
	"fmt"
)

// InvalidArgumentError marks a caller contract violation (bad participant
// count, malformed date range). It is deliberately distinct from a plain
// "not bookable" result so callers can show a validation message instead of
// an availability message.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewInvalidArgumentError(field, msg string) error {
	return &InvalidArgumentError{Field: field, Message: msg}
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}
