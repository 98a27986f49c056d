// Package compat adapts values between the halv0 and halv1 interface families.
//
// A Forward adapter wraps a v0 value and exposes v1 interfaces; a Reverse
// adapter wraps a v1 value and exposes v0 interfaces. Every adapter holds the
// inner value and nothing else: each method makes exactly one delegation
// (or, for batched transactions, one spliced exchange) and returns what the
// inner value returned.
//
// Two ways to get an adapter:
//
//	out := compat.NewForwardOutputPin(pin) // compile-time: pin must be a v0 OutputPin
//	p, err := compat.NewForward(v).OutputPin() // construction-time check, errcode.Unsupported on miss
package compat

// container is the single-field holder shared by every adapter.
type container[T any] struct {
	inner T
}

// Inner returns the wrapped value.
func (c *container[T]) Inner() T { return c.inner }

// InnerMut returns a pointer to the wrapped value.
func (c *container[T]) InnerMut() *T { return &c.inner }

// Unwrap returns the wrapped value. The adapter should not be used afterwards.
func (c *container[T]) Unwrap() T { return c.inner }

// Forward wraps a v0 value for use by v1 consumers. Which v1 interfaces are
// available depends on the inner value; see the builder methods.
type Forward[T any] struct {
	container[T]
}

// NewForward wraps any value. Nothing is checked until a builder is called.
func NewForward[T any](inner T) *Forward[T] {
	return &Forward[T]{container[T]{inner: inner}}
}

// Reverse wraps a v1 value for use by v0 consumers.
type Reverse[T any] struct {
	container[T]
}

// NewReverse wraps any value. Nothing is checked until a builder is called.
func NewReverse[T any](inner T) *Reverse[T] {
	return &Reverse[T]{container[T]{inner: inner}}
}
