package immu

// Stack is a slice-backed LIFO container. The zero value is an empty stack
// ready for use. Unlike the other containers in this package a Stack is
// mutable; it exists as a building block (the tree traversals use one) and as
// a small utility in its own right.
type Stack[T any] struct {
	items []T
}

// Push appends v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. ok is false when the stack is
// empty, in which case the value is the zero value of T.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	idx := len(s.items) - 1
	v := s.items[idx]
	s.items = s.items[:idx]
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Clear resets the stack to empty.
func (s *Stack[T]) Clear() { s.items = nil }
