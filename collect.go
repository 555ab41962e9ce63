package resultseq

import "iter"

// CollectAll drains seq to exhaustion and gathers its values into a slice.
// seq must be finite.
//
// Every error encountered along the way is kept. If there were any,
// CollectAll returns a nil slice and a *MultiError bundling them in
// encounter order; the values are discarded. Values stop being gathered
// the moment the first error shows up, since one error already decides
// the outcome, but the rest of the sequence is still consumed so that
// every error gets collected.
//
// The whole sequence is consumed before CollectAll returns, and the
// retained values and errors are buffered in memory.
func CollectAll[V any](seq iter.Seq2[V, error]) ([]V, error) {
	var vals []V
	var errs []error

	for v, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if len(errs) == 0 {
			vals = append(vals, v)
		}
	}

	if len(errs) > 0 {
		return nil, NewMultiError(errs)
	}

	return vals, nil
}

// Collect gathers the values of seq into a slice, stopping at the first
// error. seq must be finite.
//
// On an error Collect stops pulling from seq and returns that first error
// by itself; any values seen before it are discarded.
func Collect[V any](seq iter.Seq2[V, error]) ([]V, error) {
	vals, err := CollectAll(StopAfterError(seq))
	if err == nil {
		return vals, nil
	}

	// Truncation lets at most one error through, and CollectAll never
	// builds an empty MultiError, so there is exactly one error here.
	multi := err.(*MultiError)
	return nil, multi.errs[0]
}
