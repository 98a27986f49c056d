package compat

import (
	"iter"

	"halcompat/errcode"
	"halcompat/halv0/nb"
	spi0 "halcompat/halv0/spi"
	delay1 "halcompat/halv1/delay"
	spi1 "halcompat/halv1/spi"
	"halcompat/internal/splice"
)

// ---- forward ----

// ForwardSPIBus presents a blocking v0 bus as a v1 Bus.
type ForwardSPIBus[B SPIBusV0] struct{ container[B] }

func NewForwardSPIBus[B SPIBusV0](b B) *ForwardSPIBus[B] {
	return &ForwardSPIBus[B]{container[B]{inner: b}}
}

func (a *ForwardSPIBus[B]) Read(words []byte) error {
	clear(words)
	return a.TransferInPlace(words)
}

func (a *ForwardSPIBus[B]) Write(words []byte) error { return spiErr(a.inner.Write(words)) }

func (a *ForwardSPIBus[B]) Transfer(read, write []byte) error {
	return splice.Exchange([]splice.Segment{{Out: write, In: read}}, a.TransferInPlace)
}

func (a *ForwardSPIBus[B]) TransferInPlace(words []byte) error {
	return transferInPlace(a.inner, words)
}

func (a *ForwardSPIBus[B]) Flush() error { return nil }

func transferInPlace(t spi0.Transfer, words []byte) error {
	out, err := t.Transfer(words)
	if err != nil {
		return spiErr(err)
	}
	copy(words, out)
	return nil
}

// ForwardSPIFullDuplex presents a non-blocking v0 word interface as a v1 Bus.
// Every word is one Send followed by one Read, each retried while it would
// block.
type ForwardSPIFullDuplex[B spi0.FullDuplex] struct{ container[B] }

func NewForwardSPIFullDuplex[B spi0.FullDuplex](b B) *ForwardSPIFullDuplex[B] {
	return &ForwardSPIFullDuplex[B]{container[B]{inner: b}}
}

func (a *ForwardSPIFullDuplex[B]) word(w byte) (byte, error) {
	if err := nb.Block(func() error { return a.inner.Send(w) }); err != nil {
		return 0, spiErr(err)
	}
	r, err := nb.BlockValue(a.inner.Read)
	return r, spiErr(err)
}

func (a *ForwardSPIFullDuplex[B]) Read(words []byte) error {
	clear(words)
	return a.TransferInPlace(words)
}

func (a *ForwardSPIFullDuplex[B]) Write(words []byte) error {
	for _, w := range words {
		if _, err := a.word(w); err != nil {
			return err
		}
	}
	return nil
}

func (a *ForwardSPIFullDuplex[B]) Transfer(read, write []byte) error {
	return splice.Exchange([]splice.Segment{{Out: write, In: read}}, a.exchange)
}

func (a *ForwardSPIFullDuplex[B]) TransferInPlace(words []byte) error {
	return splice.Exchange([]splice.Segment{splice.InPlaceSeg(words)}, a.exchange)
}

func (a *ForwardSPIFullDuplex[B]) exchange(buf []byte) error {
	for i, w := range buf {
		r, err := a.word(w)
		if err != nil {
			return err
		}
		buf[i] = r
	}
	return nil
}

func (a *ForwardSPIFullDuplex[B]) Flush() error { return nil }

// ForwardSPIDevice presents a blocking v0 bus, assumed to be dedicated to one
// chip, as a v1 Device. Each transaction is one spliced exchange, cut in
// pieces at DelayNs operations.
type ForwardSPIDevice[B SPIBusV0] struct {
	container[B]
	delay delay1.DelayNs
}

func NewForwardSPIDevice[B SPIBusV0](b B) *ForwardSPIDevice[B] {
	return &ForwardSPIDevice[B]{container: container[B]{inner: b}}
}

// WithDelay sets the delay source used by DelayNs operations.
func (a *ForwardSPIDevice[B]) WithDelay(d delay1.DelayNs) *ForwardSPIDevice[B] {
	a.delay = d
	return a
}

func (a *ForwardSPIDevice[B]) Transaction(ops []spi1.Operation) error {
	for _, op := range ops {
		switch op.Kind {
		case spi1.OpRead, spi1.OpWrite, spi1.OpTransfer, spi1.OpTransferInPlace:
		case spi1.OpDelayNs:
			if a.delay == nil {
				return errcode.Unsupportedf("forward.spi_device", "delay operation without a delay source")
			}
		default:
			return &errcode.E{C: errcode.InvalidParams, Op: "forward.spi_device", Msg: "unknown operation " + op.Kind.String()}
		}
	}

	xfer := func(buf []byte) error { return transferInPlace(a.inner, buf) }
	var segs []splice.Segment
	for _, op := range ops {
		switch op.Kind {
		case spi1.OpRead:
			segs = append(segs, splice.ReadSeg(op.Read))
		case spi1.OpWrite:
			segs = append(segs, splice.WriteSeg(op.Write))
		case spi1.OpTransfer:
			segs = append(segs, splice.Segment{Out: op.Write, In: op.Read})
		case spi1.OpTransferInPlace:
			segs = append(segs, splice.InPlaceSeg(op.Read))
		case spi1.OpDelayNs:
			if len(segs) > 0 {
				if err := splice.Exchange(segs, xfer); err != nil {
					return err
				}
				segs = segs[:0]
			}
			a.delay.DelayNs(op.Ns)
		}
	}
	if len(segs) == 0 {
		return nil
	}
	return splice.Exchange(segs, xfer)
}

// ---- reverse ----

// ReverseSPIBus presents a v1 Bus through every v0 SPI interface.
type ReverseSPIBus[B spi1.Bus] struct{ container[B] }

func NewReverseSPIBus[B spi1.Bus](b B) *ReverseSPIBus[B] {
	return &ReverseSPIBus[B]{container[B]{inner: b}}
}

func (a *ReverseSPIBus[B]) Write(words []byte) error { return a.inner.Write(words) }

func (a *ReverseSPIBus[B]) Transfer(words []byte) ([]byte, error) {
	if err := a.inner.TransferInPlace(words); err != nil {
		return nil, err
	}
	return words, nil
}

// WriteIter issues one Write per word.
func (a *ReverseSPIBus[B]) WriteIter(words iter.Seq[byte]) error {
	var one [1]byte
	for w := range words {
		one[0] = w
		if err := a.inner.Write(one[:]); err != nil {
			return err
		}
	}
	return nil
}

// Read clocks in one word. It never returns nb.ErrWouldBlock.
func (a *ReverseSPIBus[B]) Read() (byte, error) {
	var one [1]byte
	err := a.inner.Read(one[:])
	return one[0], err
}

// Send clocks out one word, discarding the input.
func (a *ReverseSPIBus[B]) Send(word byte) error {
	return a.inner.Write([]byte{word})
}

// Exec splices ops into a single TransferInPlace.
func (a *ReverseSPIBus[B]) Exec(ops []spi0.Operation) error {
	segs := make([]splice.Segment, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case spi0.OpWrite:
			segs = append(segs, splice.WriteSeg(op.Buf))
		case spi0.OpTransfer:
			segs = append(segs, splice.InPlaceSeg(op.Buf))
		default:
			return &errcode.E{C: errcode.InvalidParams, Op: "reverse.spi_bus", Msg: "unknown operation " + op.Kind.String()}
		}
	}
	return splice.Exchange(segs, a.inner.TransferInPlace)
}

// ReverseSPIDevice presents a v1 Device through the v0 SPI interfaces. Every
// call is one chip-select framed transaction.
type ReverseSPIDevice[D spi1.Device] struct{ container[D] }

func NewReverseSPIDevice[D spi1.Device](d D) *ReverseSPIDevice[D] {
	return &ReverseSPIDevice[D]{container[D]{inner: d}}
}

func (a *ReverseSPIDevice[D]) Write(words []byte) error {
	return a.inner.Transaction([]spi1.Operation{spi1.WriteOp(words)})
}

func (a *ReverseSPIDevice[D]) Transfer(words []byte) ([]byte, error) {
	if err := a.inner.Transaction([]spi1.Operation{spi1.TransferInPlaceOp(words)}); err != nil {
		return nil, err
	}
	return words, nil
}

// WriteIter runs one transaction per word.
func (a *ReverseSPIDevice[D]) WriteIter(words iter.Seq[byte]) error {
	for w := range words {
		if err := a.inner.Transaction([]spi1.Operation{spi1.WriteOp([]byte{w})}); err != nil {
			return err
		}
	}
	return nil
}

func (a *ReverseSPIDevice[D]) Read() (byte, error) {
	var one [1]byte
	err := a.inner.Transaction([]spi1.Operation{spi1.ReadOp(one[:])})
	return one[0], err
}

func (a *ReverseSPIDevice[D]) Send(word byte) error {
	return a.inner.Transaction([]spi1.Operation{spi1.WriteOp([]byte{word})})
}

func (a *ReverseSPIDevice[D]) Exec(ops []spi0.Operation) error {
	v1 := make([]spi1.Operation, 0, len(ops))
	for _, op := range ops {
		switch op.Kind {
		case spi0.OpWrite:
			v1 = append(v1, spi1.WriteOp(op.Buf))
		case spi0.OpTransfer:
			v1 = append(v1, spi1.TransferInPlaceOp(op.Buf))
		default:
			return &errcode.E{C: errcode.InvalidParams, Op: "reverse.spi_device", Msg: "unknown operation " + op.Kind.String()}
		}
	}
	return a.inner.Transaction(v1)
}
