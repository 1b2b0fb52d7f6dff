package encoder

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a registry has no encoder for a field.
var ErrUnknownField = errors.New("unknown field")

// UnknownLabelError indicates a label outside a field's vocabulary.
type UnknownLabelError struct {
	Field Field
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown %s label %q", e.Field, e.Label)
}

// DecodeError indicates a code outside the range an encoder was fitted on.
// Codes come from the paired classifier, so this means the model and the
// encoder bundle disagree.
type DecodeError struct {
	Field Field
	Code  int
	Size  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: code %d out of range [0, %d)", e.Field, e.Code, e.Size)
}
