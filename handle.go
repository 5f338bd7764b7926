package recycle

import "fmt"

// Handle holds one value on loan from a [Pool]. While the handle is live it
// owns the value exclusively; exactly one of two terminal actions applies:
//
//   - [Handle.Release] resets the value and pushes it back onto the pool's
//     stash (the ordinary path, usually deferred);
//   - [Handle.Detach] extracts the value and suppresses the return, handing
//     ownership to the caller.
//
// The zero Handle is empty and useless; handles come from [Pool.Get],
// [Pool.Attach] and [NewFrom].
type Handle[T Resetter] struct {
	value T
	ok    bool
	pool  *Pool[T]
}

func newHandle[T Resetter](pool *Pool[T], value T) *Handle[T] {
	return &Handle[T]{
		value: value,
		ok:    true,
		pool:  pool,
	}
}

// Value returns the borrowed value. T is pointer-shaped for the built-in
// kinds, so mutations through the returned value are visible on the next
// call. Value panics if the handle no longer holds a value.
func (h *Handle[T]) Value() T {
	if !h.ok {
		panic("recycle: handle has no value")
	}

	return h.value
}

// Detach extracts the value out of the handle, suppressing its return to
// the pool. The pool is not notified and the value is not reset; the caller
// owns it outright. Detach panics if the handle no longer holds a value.
func (h *Handle[T]) Detach() T {
	if !h.ok {
		panic("recycle: handle has no value")
	}

	return h.take()
}

// Release resets the value and pushes it onto the pool's stash. Releasing a
// handle that was already released or detached does nothing.
func (h *Handle[T]) Release() {
	if !h.ok {
		return
	}

	h.pool.put(h.take())
}

// take empties the slot.
func (h *Handle[T]) take() T {
	value := h.value

	var zero T
	h.value = zero
	h.ok = false

	return value
}

// String forwards formatting to the borrowed value. An empty handle prints
// the sentinel "Empty Handle".
func (h *Handle[T]) String() string {
	if !h.ok {
		return "Empty Handle"
	}

	return fmt.Sprint(any(h.value))
}
