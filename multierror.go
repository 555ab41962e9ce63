package resultseq

import (
	"iter"
	"slices"
)

// MultiError bundles every error encountered while draining a sequence.
// The errors keep their encounter order. It is immutable once built.
type MultiError struct {
	errs []error
}

// NewMultiError wraps the given errors, which should number at least one.
// The container takes ownership of the slice.
func NewMultiError(errs []error) *MultiError {
	return &MultiError{errs: errs}
}

// Error returns the message of the first bundled error only. Callers that
// want the full story should use Unwrap or All.
func (m *MultiError) Error() string {
	return m.errs[0].Error()
}

// Len returns the number of bundled errors.
func (m *MultiError) Len() int {
	return len(m.errs)
}

// All returns an iterator over the bundled errors in encounter order.
func (m *MultiError) All() iter.Seq[error] {
	return slices.Values(m.errs)
}

// Unwrap exposes the bundled errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.errs
}
