package recycle

// stack is the pool's stash: a plain LIFO store. Popping the most recently
// pushed value tends to reuse the warmest storage.
type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(value T) {
	s.items = append(s.items, value)
}

func (s *stack[T]) pop() (value T, ok bool) {
	if n := len(s.items); n > 0 {
		value, ok = s.items[n-1], true

		var zero T
		s.items[n-1] = zero
		s.items = s.items[:n-1]
	}

	return value, ok
}

func (s *stack[T]) len() int {
	return len(s.items)
}
