package resultseq

import "iter"

// StopAfterError passes seq through unchanged until the first element
// carrying a non-nil error. That element is still yielded; after it the
// returned sequence is over for good. Nothing past the error is ever pulled
// from seq, and ranging the returned sequence again after an error ended it
// yields nothing.
//
// A sequence with no errors passes through whole.
func StopAfterError[V any](seq iter.Seq2[V, error]) iter.Seq2[V, error] {
	stopped := false

	return func(yield func(V, error) bool) {
		if stopped {
			return
		}

		for v, err := range seq {
			ok := yield(v, err)

			if err != nil {
				stopped = true
				return
			}

			if !ok {
				return
			}
		}
	}
}
