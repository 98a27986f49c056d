package compat

import (
	"halcompat/halv0/nb"
	serial0 "halcompat/halv0/serial"
	"halcompat/halv1/serialio"
)

// ---- forward ----

// ForwardSerial presents a blocking v0 writer as a v1 stream writer.
type ForwardSerial[S serial0.BlockingWrite] struct{ container[S] }

func NewForwardSerial[S serial0.BlockingWrite](s S) *ForwardSerial[S] {
	return &ForwardSerial[S]{container[S]{inner: s}}
}

// Write sends all of p or fails.
func (a *ForwardSerial[S]) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := a.inner.BWriteAll(p); err != nil {
		return 0, ioErr(err)
	}
	return len(p), nil
}

func (a *ForwardSerial[S]) Flush() error { return ioErr(a.inner.BFlush()) }

// ForwardSerialNB presents a non-blocking v0 word writer as a v1 stream
// writer, spinning on each word.
type ForwardSerialNB[S serial0.Write] struct{ container[S] }

func NewForwardSerialNB[S serial0.Write](s S) *ForwardSerialNB[S] {
	return &ForwardSerialNB[S]{container[S]{inner: s}}
}

func (a *ForwardSerialNB[S]) Write(p []byte) (int, error) {
	for i, w := range p {
		if err := nb.Block(func() error { return a.inner.Write(w) }); err != nil {
			return i, ioErr(err)
		}
	}
	return len(p), nil
}

func (a *ForwardSerialNB[S]) Flush() error { return ioErr(nb.Block(a.inner.Flush)) }

// ForwardSerialReader presents a non-blocking v0 word reader as a v1 stream
// reader. Read waits for one word and then takes whatever else is pending.
type ForwardSerialReader[S serial0.Read] struct{ container[S] }

func NewForwardSerialReader[S serial0.Read](s S) *ForwardSerialReader[S] {
	return &ForwardSerialReader[S]{container[S]{inner: s}}
}

func (a *ForwardSerialReader[S]) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	w, err := nb.BlockValue(a.inner.Read)
	if err != nil {
		return 0, ioErr(err)
	}
	p[0] = w
	n := 1
	for n < len(p) {
		w, err := a.inner.Read()
		if nb.IsWouldBlock(err) {
			break
		}
		if err != nil {
			return n, ioErr(err)
		}
		p[n] = w
		n++
	}
	return n, nil
}

// ---- reverse ----

// ReverseSerial presents a v1 stream writer through the v0 serial writers.
type ReverseSerial[S serialio.Write] struct{ container[S] }

func NewReverseSerial[S serialio.Write](s S) *ReverseSerial[S] {
	return &ReverseSerial[S]{container[S]{inner: s}}
}

func (a *ReverseSerial[S]) BWriteAll(words []byte) error { return serialio.WriteAll(a.inner, words) }
func (a *ReverseSerial[S]) BFlush() error                { return a.inner.Flush() }

// Write offers one word. A stream that accepts nothing yields nb.ErrWouldBlock.
func (a *ReverseSerial[S]) Write(word byte) error {
	n, err := a.inner.Write([]byte{word})
	if err != nil {
		return err
	}
	if n == 0 {
		return nb.ErrWouldBlock
	}
	return nil
}

func (a *ReverseSerial[S]) Flush() error { return a.inner.Flush() }

// ReverseSerialReader presents a v1 stream reader as a non-blocking v0 reader.
type ReverseSerialReader[S SerialReaderV1] struct{ container[S] }

func NewReverseSerialReader[S SerialReaderV1](s S) *ReverseSerialReader[S] {
	return &ReverseSerialReader[S]{container[S]{inner: s}}
}

func (a *ReverseSerialReader[S]) Read() (byte, error) {
	ready, err := a.inner.ReadReady()
	if err != nil {
		return 0, err
	}
	if !ready {
		return 0, nb.ErrWouldBlock
	}
	var one [1]byte
	n, err := a.inner.Read(one[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nb.ErrWouldBlock
	}
	return one[0], nil
}
