package recycle

// String is a growable character buffer that keeps its backing storage
// across resets, the shipped string conformance for pooling. The zero value
// is ready to use.
type String struct {
	buf []byte
}

// NewString returns a fresh empty String, suitable as a pool constructor.
func NewString() *String {
	return new(String)
}

// Reset truncates the buffer to empty, keeping its capacity.
func (s *String) Reset() {
	s.buf = s.buf[:0]
}

// InitializeWith appends source to the buffer. The pool calls it on an
// empty buffer only; on a non-empty buffer it appends, it does not replace.
func (s *String) InitializeWith(source string) {
	s.buf = append(s.buf, source...)
}

// WriteString appends str to the buffer.
func (s *String) WriteString(str string) (int, error) {
	s.buf = append(s.buf, str...)

	return len(str), nil
}

// Write appends p to the buffer, implementing io.Writer. It never fails.
func (s *String) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)

	return len(p), nil
}

// WriteByte appends a single byte to the buffer.
func (s *String) WriteByte(c byte) error {
	s.buf = append(s.buf, c)

	return nil
}

// String returns a copy of the contents.
func (s *String) String() string {
	return string(s.buf)
}

// Len reports the number of bytes held.
func (s *String) Len() int {
	return len(s.buf)
}

// Cap reports the capacity of the backing storage.
func (s *String) Cap() int {
	return cap(s.buf)
}

// Grow ensures capacity for at least n more bytes.
func (s *String) Grow(n int) {
	if cap(s.buf)-len(s.buf) < n {
		grown := make([]byte, len(s.buf), len(s.buf)+n)
		copy(grown, s.buf)
		s.buf = grown
	}
}

// Vector is a growable sequence of E that keeps its backing storage across
// resets, the shipped sequence conformance for pooling. The zero value is
// ready to use.
type Vector[E any] struct {
	items []E
}

// NewVector returns a fresh empty Vector, suitable as a pool constructor.
func NewVector[E any]() *Vector[E] {
	return new(Vector[E])
}

// Reset truncates the sequence to empty, keeping its capacity.
func (v *Vector[E]) Reset() {
	v.items = v.items[:0]
}

// Append adds items to the end of the sequence.
func (v *Vector[E]) Append(items ...E) {
	v.items = append(v.items, items...)
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[E]) At(i int) E {
	return v.items[i]
}

// Items returns the backing slice. It stays valid until the next Append,
// Grow or Reset.
func (v *Vector[E]) Items() []E {
	return v.items
}

// Len reports the number of elements held.
func (v *Vector[E]) Len() int {
	return len(v.items)
}

// Cap reports the capacity of the backing storage.
func (v *Vector[E]) Cap() int {
	return cap(v.items)
}

// Grow ensures capacity for at least n more elements.
func (v *Vector[E]) Grow(n int) {
	if cap(v.items)-len(v.items) < n {
		grown := make([]E, len(v.items), len(v.items)+n)
		copy(grown, v.items)
		v.items = grown
	}
}
