package drvshim

import (
	"runtime"

	"halcompat/halv1/serialio"

	"tinygo.org/x/drivers"
)

// Stream presents a tinygo drivers.UART as a v1 byte stream. The driver UART
// reads without blocking, so Read yields until at least one byte arrives.
type Stream struct {
	u drivers.UART
}

var (
	_ serialio.Read       = (*Stream)(nil)
	_ serialio.ReadReady  = (*Stream)(nil)
	_ serialio.Write      = (*Stream)(nil)
	_ serialio.WriteReady = (*Stream)(nil)
)

func FromUART(u drivers.UART) *Stream { return &Stream{u: u} }

func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		n, err := s.u.Read(p)
		if n > 0 || err != nil {
			return n, err
		}
		runtime.Gosched()
	}
}

func (s *Stream) ReadReady() (bool, error) { return s.u.Buffered() > 0, nil }

func (s *Stream) Write(p []byte) (int, error) { return s.u.Write(p) }

// Flush is a no-op: driver UARTs return from Write once the bytes are queued.
func (s *Stream) Flush() error { return nil }

func (s *Stream) WriteReady() (bool, error) { return true, nil }

// ReadWriter is the subset of the v1 stream interfaces UART needs.
type ReadWriter interface {
	serialio.Read
	serialio.ReadReady
	serialio.Write
}

// UART presents a v1 stream as a tinygo drivers.UART. Read never blocks and
// Buffered only reports whether anything is pending (0 or 1).
type UART struct {
	s ReadWriter
}

var _ drivers.UART = UART{}

func NewUART(s ReadWriter) UART { return UART{s: s} }

func (u UART) Read(p []byte) (int, error) {
	ready, err := u.s.ReadReady()
	if err != nil || !ready {
		return 0, err
	}
	return u.s.Read(p)
}

func (u UART) Write(p []byte) (int, error) {
	if err := serialio.WriteAll(u.s, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (u UART) Buffered() int {
	if ready, _ := u.s.ReadReady(); ready {
		return 1
	}
	return 0
}
