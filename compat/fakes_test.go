package compat

import (
	"context"
	"errors"

	"halcompat/halv0/nb"
	i2c0 "halcompat/halv0/i2c"
	i2c1 "halcompat/halv1/i2c"
	spi1 "halcompat/halv1/spi"
)

var errBoom = errors.New("boom")

// ---- v0 doubles ----

// fakePin is a v0 input, output and stateful output pin.
type fakePin struct {
	level bool
	sets  []bool
	err   error
}

func (p *fakePin) IsHigh() (bool, error)    { return p.level, p.err }
func (p *fakePin) IsLow() (bool, error)     { return !p.level, p.err }
func (p *fakePin) IsSetHigh() (bool, error) { return p.level, p.err }
func (p *fakePin) IsSetLow() (bool, error)  { return !p.level, p.err }
func (p *fakePin) SetHigh() error           { return p.set(true) }
func (p *fakePin) SetLow() error            { return p.set(false) }

func (p *fakePin) set(v bool) error {
	if p.err != nil {
		return p.err
	}
	p.level = v
	p.sets = append(p.sets, v)
	return nil
}

type togglePin struct {
	fakePin
	toggles int
}

func (p *togglePin) Toggle() error {
	p.toggles++
	p.level = !p.level
	return nil
}

// waitPin is a v0 input pin that also implements the v1 waits.
type waitPin struct {
	fakePin
	ctx   context.Context
	calls []string
}

func (p *waitPin) record(ctx context.Context, name string) error {
	p.ctx = ctx
	p.calls = append(p.calls, name)
	return ctx.Err()
}

func (p *waitPin) WaitForHigh(ctx context.Context) error { return p.record(ctx, "high") }
func (p *waitPin) WaitForLow(ctx context.Context) error  { return p.record(ctx, "low") }
func (p *waitPin) WaitForRisingEdge(ctx context.Context) error {
	return p.record(ctx, "rising")
}
func (p *waitPin) WaitForFallingEdge(ctx context.Context) error {
	return p.record(ctx, "falling")
}
func (p *waitPin) WaitForAnyEdge(ctx context.Context) error { return p.record(ctx, "any") }

// loopSPI is a v0 Write+Transfer bus whose Transfer echoes the input.
type loopSPI struct {
	writes    [][]byte
	transfers [][]byte
	invert    bool
	copyOut   bool // return a fresh slice instead of aliasing the input
	err       error
}

func (b *loopSPI) Write(words []byte) error {
	if b.err != nil {
		return b.err
	}
	b.writes = append(b.writes, append([]byte(nil), words...))
	return nil
}

func (b *loopSPI) Transfer(words []byte) ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.transfers = append(b.transfers, append([]byte(nil), words...))
	out := words
	if b.copyOut {
		out = make([]byte, len(words))
		copy(out, words)
	}
	if b.invert {
		for i := range out {
			out[i] = ^out[i]
		}
	}
	return out, nil
}

// duplexSPI is a non-blocking v0 FullDuplex that answers each word with its
// complement and would block every other call.
type duplexSPI struct {
	pending []byte
	sent    []byte
	tick    int
	blocks  int
}

func (d *duplexSPI) busy() bool {
	d.tick++
	if d.tick%2 == 1 {
		d.blocks++
		return true
	}
	return false
}

func (d *duplexSPI) Send(w byte) error {
	if d.busy() {
		return nb.ErrWouldBlock
	}
	d.sent = append(d.sent, w)
	d.pending = append(d.pending, ^w)
	return nil
}

func (d *duplexSPI) Read() (byte, error) {
	if d.busy() {
		return 0, nb.ErrWouldBlock
	}
	w := d.pending[0]
	d.pending = d.pending[1:]
	return w, nil
}

type i2cCall struct {
	op   string
	addr uint8
	w    []byte
	rlen int
}

// fakeI2C0 is a v0 bus that records calls and fills reads with fill.
type fakeI2C0 struct {
	calls []i2cCall
	fill  byte
	err   error
}

func (b *fakeI2C0) record(c i2cCall) { b.calls = append(b.calls, c) }

func (b *fakeI2C0) Read(addr uint8, buf []byte) error {
	b.record(i2cCall{op: "read", addr: addr, rlen: len(buf)})
	for i := range buf {
		buf[i] = b.fill + byte(i)
	}
	return b.err
}

func (b *fakeI2C0) Write(addr uint8, buf []byte) error {
	b.record(i2cCall{op: "write", addr: addr, w: append([]byte(nil), buf...)})
	return b.err
}

func (b *fakeI2C0) WriteRead(addr uint8, w, r []byte) error {
	b.record(i2cCall{op: "write_read", addr: addr, w: append([]byte(nil), w...), rlen: len(r)})
	for i := range r {
		r[i] = b.fill + byte(i)
	}
	return b.err
}

type txI2C0 struct {
	fakeI2C0
	execs [][]i2c0.Operation
}

func (b *txI2C0) Exec(addr uint8, ops []i2c0.Operation) error {
	b.record(i2cCall{op: "exec", addr: addr})
	b.execs = append(b.execs, ops)
	return b.err
}

type bwriter struct {
	data    []byte
	flushes int
	err     error
}

func (w *bwriter) BWriteAll(p []byte) error {
	if w.err != nil {
		return w.err
	}
	w.data = append(w.data, p...)
	return nil
}

func (w *bwriter) BFlush() error { w.flushes++; return w.err }

// nbSerial is a non-blocking v0 word writer and reader that would block on
// every other call.
type nbSerial struct {
	out     []byte
	in      []byte
	tick    int
	flushes int
}

func (s *nbSerial) busy() bool { s.tick++; return s.tick%2 == 1 }

func (s *nbSerial) Write(w byte) error {
	if s.busy() {
		return nb.ErrWouldBlock
	}
	s.out = append(s.out, w)
	return nil
}

func (s *nbSerial) Flush() error {
	if s.busy() {
		return nb.ErrWouldBlock
	}
	s.flushes++
	return nil
}

// rxSerial hands out in and then reports would-block.
type rxSerial struct {
	in  []byte
	err error
}

func (s *rxSerial) Read() (byte, error) {
	if len(s.in) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, nb.ErrWouldBlock
	}
	w := s.in[0]
	s.in = s.in[1:]
	return w, nil
}

type delay0Rec[W uint8 | uint16 | uint32] struct {
	ms []W
	us []W
}

func (d *delay0Rec[W]) DelayMs(ms W) { d.ms = append(d.ms, ms) }
func (d *delay0Rec[W]) DelayUs(us W) { d.us = append(d.us, us) }

// ---- v1 doubles ----

type pin1 struct {
	level   bool
	toggles int
	err     error
}

func (p *pin1) IsHigh() (bool, error)    { return p.level, p.err }
func (p *pin1) IsLow() (bool, error)     { return !p.level, p.err }
func (p *pin1) IsSetHigh() (bool, error) { return p.level, p.err }
func (p *pin1) IsSetLow() (bool, error)  { return !p.level, p.err }
func (p *pin1) SetHigh() error           { p.level = true; return p.err }
func (p *pin1) SetLow() error            { p.level = false; return p.err }
func (p *pin1) Toggle() error            { p.toggles++; p.level = !p.level; return p.err }

type spiCall struct {
	op   string
	data []byte
}

// bus1 is a v1 Bus that echoes TransferInPlace and records every call.
type bus1 struct {
	calls []spiCall
	read  byte
	err   error
}

func (b *bus1) rec(op string, p []byte) error {
	b.calls = append(b.calls, spiCall{op: op, data: append([]byte(nil), p...)})
	return b.err
}

func (b *bus1) Read(words []byte) error {
	for i := range words {
		words[i] = b.read
	}
	return b.rec("read", words)
}
func (b *bus1) Write(words []byte) error           { return b.rec("write", words) }
func (b *bus1) Transfer(read, write []byte) error  { return b.rec("transfer", write) }
func (b *bus1) TransferInPlace(words []byte) error { return b.rec("transfer_in_place", words) }
func (b *bus1) Flush() error                       { return b.rec("flush", nil) }

// device1 records transactions. Reads are filled with 0xA5.
type device1 struct {
	txs [][]spi1.Operation
	err error
}

func (d *device1) Transaction(ops []spi1.Operation) error {
	d.txs = append(d.txs, ops)
	if d.err != nil {
		return d.err
	}
	for _, op := range ops {
		if op.Kind == spi1.OpRead {
			for i := range op.Read {
				op.Read[i] = 0xA5
			}
		}
	}
	return nil
}

type fakeI2C1 struct {
	calls []i2cCall
	txs   [][]i2c1.Operation
	err   error
}

func (b *fakeI2C1) Read(addr uint8, buf []byte) error {
	b.calls = append(b.calls, i2cCall{op: "read", addr: addr, rlen: len(buf)})
	return b.err
}

func (b *fakeI2C1) Write(addr uint8, buf []byte) error {
	b.calls = append(b.calls, i2cCall{op: "write", addr: addr, w: append([]byte(nil), buf...)})
	return b.err
}

func (b *fakeI2C1) WriteRead(addr uint8, w, r []byte) error {
	b.calls = append(b.calls, i2cCall{op: "write_read", addr: addr, w: append([]byte(nil), w...), rlen: len(r)})
	return b.err
}

func (b *fakeI2C1) Transaction(addr uint8, ops []i2c1.Operation) error {
	b.calls = append(b.calls, i2cCall{op: "transaction", addr: addr})
	b.txs = append(b.txs, ops)
	return b.err
}

// stream1 is a v1 stream that accepts at most limit bytes per Write.
type stream1 struct {
	data    []byte
	limit   int
	flushes int
	in      []byte
	err     error
}

func (s *stream1) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := min(len(p), s.limit)
	s.data = append(s.data, p[:n]...)
	return n, nil
}

func (s *stream1) Flush() error { s.flushes++; return s.err }

func (s *stream1) ReadReady() (bool, error) { return len(s.in) > 0, s.err }

func (s *stream1) Read(p []byte) (int, error) {
	n := copy(p, s.in)
	s.in = s.in[n:]
	return n, nil
}

type delay1Rec struct {
	ns, us, ms []uint32
}

func (d *delay1Rec) DelayNs(ns uint32) { d.ns = append(d.ns, ns) }
func (d *delay1Rec) DelayUs(us uint32) { d.us = append(d.us, us) }
func (d *delay1Rec) DelayMs(ms uint32) { d.ms = append(d.ms, ms) }
