package form

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a submission is structurally malformed or
// fails a field rule. Callers match it with [errors.Is]; the wrapped message
// carries the offending field.
var ErrValidation = errors.New("validation failed")

func invalidField(field, reason string) error {
	return fmt.Errorf("%w: field %s: %s", ErrValidation, field, reason)
}
