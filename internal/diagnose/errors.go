package diagnose

import (
	"errors"
	"fmt"

	"github.com/abhisek/petdx/internal/encoder"
)

// InputError indicates a malformed prediction request.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }

// ModelError wraps a classifier failure or a model output the encoders cannot
// decode.
type ModelError struct {
	Model string // "disease" or "danger"
	Err   error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s model: %v", e.Model, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// IsInputError reports whether err was caused by the caller's input: a
// malformed request or an animal outside the trained vocabulary.
func IsInputError(err error) bool {
	var ie *InputError
	if errors.As(err, &ie) {
		return true
	}
	var ule *encoder.UnknownLabelError
	return errors.As(err, &ule)
}
