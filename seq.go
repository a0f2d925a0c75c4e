package stack

import "iter"

// All returns an iterator over the stack's elements from most recently
// pushed to least recently pushed, without modifying the stack. Every
// range over the returned sequence is a fresh traversal of the stack as
// it is at that moment. The stack must not be mutated while a single
// range pass is in progress.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Refs returns an iterator that yields a pointer to each element, from
// most recently pushed to least recently pushed. Every element is visited
// exactly once, no two yielded pointers alias, and writes through a
// yielded pointer update that element in place. The stack must not be
// otherwise accessed while a range pass is in progress.
func (s *Stack[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}

// Drain returns an iterator that consumes the stack: each step pops the
// current top element and yields it, ending when the stack is empty.
// Breaking out of the range leaves the remaining elements in place, so a
// partially drained stack stays usable.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
