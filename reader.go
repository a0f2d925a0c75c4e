package stack

import "iter"

// Reader provides pull-style access to an iter.Seq value, such as the
// sequences returned by All, Refs and Drain.
//
// Reader is provided as a way to consume a traversal in fixed-size
// chunks without collecting the whole sequence into a single slice.
type Reader[T any] struct {
	// next is the function returned by iter.Pull that provides the next
	// available element of the wrapped sequence.
	next func() (T, bool)

	// stop is the function returned by iter.Pull that signals that the
	// wrapped sequence will no longer be consumed.
	stop func()
}

// NewReader returns a Reader that consumes the given sequence. A Reader
// pulls elements only as Read asks for them; wrapping Drain therefore
// removes elements from the underlying stack one Read at a time.
func NewReader[T any](seq iter.Seq[T]) *Reader[T] {
	next, stop := iter.Pull(seq)
	return &Reader[T]{
		next: next,
		stop: stop,
	}
}

// Read fills buf with elements pulled from the sequence and returns the
// count of elements written. A count smaller than len(buf) means the
// sequence is exhausted, and subsequent calls return 0.
func (r *Reader[T]) Read(buf []T) int {
	var filled int

	for filled < len(buf) {
		v, ok := r.next()
		if !ok {
			r.stop()
			break
		}

		buf[filled] = v
		filled++
	}
	return filled
}

// Close signals that the caller will not continue to read from the
// sequence. Calling Read after Close is a programming error.
func (r *Reader[T]) Close() error {
	r.stop()
	return nil
}
