package mathx

import "golang.org/x/exp/constraints"

// CeilDiv returns ceil(a/b). A zero divisor yields 0.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// MaxOf returns the largest value representable by T.
func MaxOf[T constraints.Unsigned]() T {
	return ^T(0)
}

// Chunks calls fn with successive pieces of total, none larger than MaxOf[T].
// A zero total still produces a single zero-sized call.
func Chunks[T constraints.Unsigned](total uint32, fn func(T)) {
	lim := uint64(MaxOf[T]())
	rem := uint64(total)
	for {
		n := min(rem, lim)
		fn(T(n))
		rem -= n
		if rem == 0 {
			return
		}
	}
}
