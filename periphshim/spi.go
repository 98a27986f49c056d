package periphshim

import (
	"time"

	"halcompat/errcode"
	delay1 "halcompat/halv1/delay"
	spi1 "halcompat/halv1/spi"
	"halcompat/internal/splice"

	"periph.io/x/conn/v3/spi"
)

// SPI presents a periph spi.Conn as a v1 Bus. periph wants equal length
// buffers, so reads clock zeros and unequal transfers are staged.
type SPI struct {
	conn spi.Conn
}

var _ spi1.Bus = (*SPI)(nil)

func FromSPI(c spi.Conn) *SPI { return &SPI{conn: c} }

func (s *SPI) Read(words []byte) error {
	return s.conn.Tx(make([]byte, len(words)), words)
}

func (s *SPI) Write(words []byte) error { return s.conn.Tx(words, nil) }

func (s *SPI) Transfer(read, write []byte) error {
	if len(read) == len(write) {
		return s.conn.Tx(write, read)
	}
	return splice.Exchange([]splice.Segment{{Out: write, In: read}}, s.TransferInPlace)
}

func (s *SPI) TransferInPlace(words []byte) error {
	rx := make([]byte, len(words))
	if err := s.conn.Tx(words, rx); err != nil {
		return err
	}
	copy(words, rx)
	return nil
}

func (s *SPI) Flush() error { return nil }

// Device presents a periph spi.Conn as a v1 Device. A transaction becomes
// one TxPackets call with chip select held between packets; a DelayNs
// operation ends the current call, with chip select still held unless no
// data follows, waits, and starts the next.
type Device struct {
	conn  spi.Conn
	delay delay1.DelayNs
}

var _ spi1.Device = (*Device)(nil)

func NewDevice(c spi.Conn) *Device { return &Device{conn: c, delay: sleeper{}} }

// WithDelay replaces the time.Sleep based delay.
func (d *Device) WithDelay(dl delay1.DelayNs) *Device {
	if dl != nil {
		d.delay = dl
	}
	return d
}

func (d *Device) Transaction(ops []spi1.Operation) error {
	var (
		pkts  []spi.Packet
		fixup []splice.Segment
	)
	flush := func(keepCS bool) error {
		if len(pkts) == 0 {
			return nil
		}
		for i := range pkts {
			pkts[i].KeepCS = true
		}
		pkts[len(pkts)-1].KeepCS = keepCS
		if err := d.conn.TxPackets(pkts); err != nil {
			return err
		}
		for i, f := range fixup {
			if f.In != nil {
				copy(f.In, pkts[i].R)
			}
		}
		pkts, fixup = pkts[:0], fixup[:0]
		return nil
	}
	last := -1
	for i, op := range ops {
		if op.Kind != spi1.OpDelayNs {
			last = i
		}
	}
	for i, op := range ops {
		var seg splice.Segment
		switch op.Kind {
		case spi1.OpRead:
			seg = splice.ReadSeg(op.Read)
		case spi1.OpWrite:
			seg = splice.WriteSeg(op.Write)
		case spi1.OpTransfer:
			seg = splice.Segment{Out: op.Write, In: op.Read}
		case spi1.OpTransferInPlace:
			seg = splice.InPlaceSeg(op.Read)
		case spi1.OpDelayNs:
			if err := flush(i < last); err != nil {
				return err
			}
			d.delay.DelayNs(op.Ns)
			continue
		default:
			return &errcode.E{C: errcode.InvalidParams, Op: "periphshim.spi_device", Msg: "unknown operation " + op.Kind.String()}
		}
		pkts = append(pkts, packet(seg))
		fixup = append(fixup, seg)
	}
	return flush(false)
}

// packet builds an equal length W/R pair for seg. Write-only segments get no
// R; everything else reads into a scratch buffer copied out after success.
func packet(seg splice.Segment) spi.Packet {
	n := seg.Len()
	w := seg.Out
	if len(w) != n {
		w = splice.Stage(make([]byte, 0, n), []splice.Segment{seg})
	}
	if !seg.Reads() {
		return spi.Packet{W: w}
	}
	return spi.Packet{W: w, R: make([]byte, n)}
}

type sleeper struct{}

func (sleeper) DelayNs(ns uint32) { time.Sleep(time.Duration(ns)) }
func (sleeper) DelayUs(us uint32) { time.Sleep(time.Duration(us) * time.Microsecond) }
func (sleeper) DelayMs(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }
