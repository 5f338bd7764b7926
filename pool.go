// Package recycle implements a deterministic pool of reusable, resettable
// values. A pool hands values out wrapped in a [Handle]; releasing the handle
// resets the value and pushes it back onto the pool's stash for later reuse,
// so the backing storage a value has already grown stays warm across borrows.
//
// Unlike sync.Pool, a [Pool] is fully deterministic: the stash is LIFO, its
// size is observable via [Pool.Size], and idle values are never evicted.
// The price is that a Pool and its handles are not safe for concurrent use.
//
// A handle keeps a pointer to its pool, so the pool stays reachable for as
// long as any handle is live.
package recycle

// Resetter is the capability a pooled value must provide.
type Resetter interface {
	// Reset returns the value to its empty state in place, retaining any
	// backing storage it has already allocated. Reset must be idempotent
	// and must not fail.
	Reset()
}

// Initializer is the optional capability to populate an empty value from a
// source of type S.
type Initializer[S any] interface {
	Resetter

	// InitializeWith populates the value from source. It assumes the value
	// is empty, as fresh from the constructor or just reset; the pool never
	// resets before initializing. On a non-empty value the effect depends
	// on the implementation ([String] appends rather than replaces).
	InitializeWith(source S)
}

type poolConfig struct {
	size    int
	maxIdle int
	onReset []func()
}

// Option is a functional option for [New].
type Option func(*poolConfig)

// WithSize prefills the pool with n freshly constructed values.
func WithSize(n int) Option {
	return func(c *poolConfig) {
		c.size = n
	}
}

// WithMaxIdle caps the stash at n idle values; returns beyond the cap are
// dropped. n <= 0 means unbounded, which is the default.
func WithMaxIdle(n int) Option {
	return func(c *poolConfig) {
		c.maxIdle = n
	}
}

// WithOnResetCallback includes one or more callbacks to be executed after a
// value is reset on its way back to the stash.
func WithOnResetCallback(onResets ...func()) Option {
	return func(c *poolConfig) {
		c.onReset = append(c.onReset, onResets...)
	}
}

// Pool holds a stash of idle values of type T and vends them wrapped in
// handles. The stash is LIFO, so the most recently returned value is reused
// first, and it grows without bound unless [WithMaxIdle] is set.
//
// A Pool is not safe for concurrent use. Reset and InitializeWith
// implementations must not call back into the pool that is recycling them.
type Pool[T Resetter] struct {
	ctor    func() T
	idle    stack[T]
	maxIdle int
	onReset []func()
}

// New is the constructor of a *recycle.Pool.
// Receives the constructor of the type T.
func New[T Resetter](ctor func() T, opts ...Option) *Pool[T] {
	var c poolConfig

	for _, opt := range opts {
		opt(&c)
	}

	p := &Pool[T]{
		ctor:    ctor,
		maxIdle: c.maxIdle,
		onReset: c.onReset,
	}

	for i := 0; i < c.size; i++ {
		p.idle.push(ctor())
	}

	return p
}

// Get fetches one value from the stash, or constructs a fresh one if the
// stash is empty, and wraps it in a handle bound to this pool. It never
// fails and never blocks.
func (p *Pool[T]) Get() *Handle[T] {
	return newHandle(p, p.Detached())
}

// Attach wraps an externally constructed value in a handle bound to this
// pool. When the handle is released the value joins this pool's stash, even
// though it was never drawn from it.
func (p *Pool[T]) Attach(value T) *Handle[T] {
	return newHandle(p, value)
}

// Detached fetches one value from the stash, or constructs a fresh one,
// and returns it bare: no handle, no automatic return. The counterpart of
// [Pool.Attach].
func (p *Pool[T]) Detached() T {
	if value, ok := p.idle.pop(); ok {
		return value
	}

	return p.ctor()
}

// Size reports the number of idle values currently in the stash. It is an
// observability aid only.
func (p *Pool[T]) Size() int {
	return p.idle.len()
}

// put resets value and pushes it onto the stash. Called by Handle.Release.
func (p *Pool[T]) put(value T) {
	value.Reset()

	for _, onReset := range p.onReset {
		onReset()
	}

	if p.maxIdle > 0 && p.idle.len() >= p.maxIdle {
		return
	}

	p.idle.push(value)
}

// NewFrom fetches one value from the pool as [Pool.Get] does, populates it
// from source via InitializeWith, and wraps it in a handle bound to the
// pool. The value is empty when InitializeWith runs: it either just came
// off the stash, reset on return, or was freshly constructed.
//
// It is a package-level function because Go methods cannot introduce the
// extra type parameter S.
func NewFrom[S any, T Initializer[S]](p *Pool[T], source S) *Handle[T] {
	value := p.Detached()
	value.InitializeWith(source)

	return newHandle(p, value)
}
