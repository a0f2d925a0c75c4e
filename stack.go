// Package stack implements a last-in-first-out container backed by a
// singly linked list.
//
// A Stack owns the whole chain of nodes reachable from its head. Push,
// Pop, Peek and Ref are O(1). Traversal comes in three forms: All yields
// each element's value without modifying the stack, Refs yields a pointer
// to each element so callers can update elements in place, and Drain pops
// elements as they are yielded, leaving the stack empty once the sequence
// is exhausted.
//
// A Stack is not safe for concurrent use. At any instant it may serve any
// number of concurrent reads or exactly one mutation, never both; that
// discipline extends to traversals, which must not overlap with
// mutations. Distinct Stack values are fully independent and can be used
// by different goroutines. Nodes detached by Pop, Drain or Clear are
// severed from the live chain, so a traversal that was left holding a
// detached element observes the end of its sequence rather than a retired
// chain.
package stack

// node is a single link in the chain. Exactly one reference owns a node
// at a time: the stack head, or the next field of its predecessor.
type node[T any] struct {
	elem T
	next *node[T]
}

// Stack is a LIFO container for values of T based on a linked list. The
// most recently pushed element is the first one popped. A zero value
// Stack can be used without initialization.
type Stack[T any] struct {
	head *node[T]
	size int
}

// New returns an empty Stack. It is equivalent to declaring a zero value
// Stack and is provided for call sites that want a pointer.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.head = &node[T]{elem: v, next: s.head}
	s.size++
}

// PushAll pushes the provided values left to right, so the last argument
// ends up on top of the stack.
func (s *Stack[T]) PushAll(vs ...T) {
	for _, v := range vs {
		s.Push(v)
	}
}

// Pop removes the top element and returns it. The second return value is
// false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}

	n := s.head
	s.head = n.next
	// A detached node never keeps a reference into the live chain.
	n.next = nil
	s.size--
	return n.elem, true
}

// Peek returns the value of the top element without removing it. The
// second return value is false when the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// Ref returns a pointer to the top element, or nil when the stack is
// empty. Writes through the pointer update the element in place. The
// pointer stays valid until the element is popped or the stack is
// cleared, and at most one such pointer should be live at a time.
func (s *Stack[T]) Ref() *T {
	if s.head == nil {
		return nil
	}
	return &s.head.elem
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Clear removes every element. It walks the chain in a loop, detaching
// the head node and severing its next pointer at each step, so teardown
// runs in constant auxiliary space regardless of chain length and an
// element pointer retained by the caller never keeps the rest of the
// retired chain reachable.
func (s *Stack[T]) Clear() {
	cur := s.head
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
	s.head = nil
	s.size = 0
}
