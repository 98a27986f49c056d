package drvshim

import (
	spi1 "halcompat/halv1/spi"
	"halcompat/internal/splice"

	"tinygo.org/x/drivers"
)

// SPI adapts a v1 Bus to the tinygo driver SPI shape.
type SPI struct {
	bus spi1.Bus
}

var _ drivers.SPI = SPI{}

func NewSPI(bus spi1.Bus) SPI { return SPI{bus: bus} }

func (s SPI) Tx(w, r []byte) error {
	switch {
	case r == nil:
		return s.bus.Write(w)
	case w == nil:
		return s.bus.Read(r)
	}
	return s.bus.Transfer(r, w)
}

func (s SPI) Transfer(b byte) (byte, error) {
	buf := [1]byte{b}
	err := s.bus.TransferInPlace(buf[:])
	return buf[0], err
}

// SPIDevice adapts a v1 Device to the tinygo driver SPI shape. Each call is
// one chip-select framed transaction.
type SPIDevice struct {
	dev spi1.Device
}

var _ drivers.SPI = SPIDevice{}

func NewSPIDevice(dev spi1.Device) SPIDevice { return SPIDevice{dev: dev} }

func (s SPIDevice) Tx(w, r []byte) error {
	var op spi1.Operation
	switch {
	case r == nil:
		op = spi1.WriteOp(w)
	case w == nil:
		op = spi1.ReadOp(r)
	default:
		op = spi1.TransferOp(r, w)
	}
	return s.dev.Transaction([]spi1.Operation{op})
}

func (s SPIDevice) Transfer(b byte) (byte, error) {
	buf := [1]byte{b}
	err := s.dev.Transaction([]spi1.Operation{spi1.TransferInPlaceOp(buf[:])})
	return buf[0], err
}

// SPIBus presents a tinygo drivers.SPI as a v1 Bus. The driver bus wants
// equal length buffers, so unequal transfers go through a staging buffer.
type SPIBus struct {
	tx drivers.SPI
}

var _ spi1.Bus = (*SPIBus)(nil)

func FromSPI(tx drivers.SPI) *SPIBus { return &SPIBus{tx: tx} }

func (b *SPIBus) Read(words []byte) error  { return b.tx.Tx(nil, words) }
func (b *SPIBus) Write(words []byte) error { return b.tx.Tx(words, nil) }

func (b *SPIBus) Transfer(read, write []byte) error {
	if len(read) == len(write) {
		return b.tx.Tx(write, read)
	}
	return splice.Exchange([]splice.Segment{{Out: write, In: read}}, b.TransferInPlace)
}

func (b *SPIBus) TransferInPlace(words []byte) error {
	rx := make([]byte, len(words))
	if err := b.tx.Tx(words, rx); err != nil {
		return err
	}
	copy(words, rx)
	return nil
}

func (b *SPIBus) Flush() error { return nil }
