// Package serial holds the v0 serial interfaces. Write and Read are
// word-at-a-time and non-blocking (see halcompat/halv0/nb); BlockingWrite
// is the slice-based blocking variant.
package serial

// Write sends one word. Both methods may return nb.ErrWouldBlock.
type Write interface {
	Write(word byte) error
	Flush() error
}

// Read receives one word, or nb.ErrWouldBlock if none is pending.
type Read interface {
	Read() (byte, error)
}

// BlockingWrite sends whole buffers and blocks until done.
type BlockingWrite interface {
	BWriteAll(words []byte) error
	BFlush() error
}
