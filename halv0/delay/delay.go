// Package delay holds the v0 blocking delay interfaces. They are generic over
// the width of the duration word; implementations pick one width per method.
package delay

// Word is the set of duration widths a v0 delay may accept.
type Word interface {
	~uint8 | ~uint16 | ~uint32
}

// DelayMs pauses for a number of milliseconds.
type DelayMs[W Word] interface {
	DelayMs(ms W)
}

// DelayUs pauses for a number of microseconds.
type DelayUs[W Word] interface {
	DelayUs(us W)
}

// Delay is the usual pairing of both.
type Delay[W Word] interface {
	DelayMs[W]
	DelayUs[W]
}
