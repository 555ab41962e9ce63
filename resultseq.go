// Package resultseq collapses a sequence of fallible results into a single
// outcome.
//
// The sequences here are iter.Seq2[V, error] values where each element is
// either a value or an error. Collect unwraps such a sequence into a []V,
// stopping at the first error and returning it by itself ("fail fast").
// CollectAll instead drains the whole sequence and returns every error it
// saw, bundled into a MultiError ("fail slow"). StopAfterError is the
// adapter underneath the fail fast behavior and can be used on its own.
//
// Neither collection function is lazy. Both consume their input before
// returning and buffer what they retain, so the input sequence must be
// finite.
package resultseq

import "iter"

// Turns a Seq into a Seq2 where the second element is always nil. Useful
// for feeding a sequence that cannot fail into code that expects fallible
// elements.
func WithoutErrors[V any](seq iter.Seq[V]) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		for v := range seq {
			if !yield(v, nil) {
				break
			}
		}
	}
}
