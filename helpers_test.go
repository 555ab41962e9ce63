package resultseq_test

import (
	"fmt"
	"iter"
)

// A step is one element of a test sequence: a value or an error.
type step struct {
	v   int
	err error
}

// stepSeq plays back steps as a fallible sequence. Since it is backed by a
// slice, ranging it a second time replays it from the beginning.
func stepSeq(steps []step) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for _, s := range steps {
			if !yield(s.v, s.err) {
				return
			}
		}
	}
}

// countingSeq is stepSeq with a counter for checking how much of the
// source a consumer actually pulled.
func countingSeq(steps []step, pulls *int) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for _, s := range steps {
			*pulls++
			if !yield(s.v, s.err) {
				return
			}
		}
	}
}

// drainStrings renders each element of seq as "ok:v" or "err:message" so
// tests can assert on content and order at once.
func drainStrings(seq iter.Seq2[int, error]) []string {
	var out []string

	for v, err := range seq {
		if err != nil {
			out = append(out, "err:"+err.Error())
		} else {
			out = append(out, fmt.Sprintf("ok:%d", v))
		}
	}

	return out
}
