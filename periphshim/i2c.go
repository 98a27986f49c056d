// Package periphshim connects the v1 interfaces to periph.io buses, so that
// host-side I2C and SPI controllers can serve v1 consumers and v1 buses can
// serve periph device drivers.
package periphshim

import (
	"strconv"

	"halcompat/errcode"
	i2c1 "halcompat/halv1/i2c"
	"halcompat/internal/splice"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// I2C presents a periph i2c.Bus as a v1 I2C.
type I2C struct {
	bus i2c.Bus
}

var _ i2c1.I2C = (*I2C)(nil)

func FromI2C(bus i2c.Bus) *I2C { return &I2C{bus: bus} }

func (b *I2C) Read(addr i2c1.SevenBitAddress, buf []byte) error {
	return b.bus.Tx(uint16(addr), nil, buf)
}

func (b *I2C) Write(addr i2c1.SevenBitAddress, buf []byte) error {
	return b.bus.Tx(uint16(addr), buf, nil)
}

func (b *I2C) WriteRead(addr i2c1.SevenBitAddress, w, r []byte) error {
	return b.bus.Tx(uint16(addr), w, r)
}

// Transaction issues a single Tx: the write run as w and the read run after
// it as r. Lists that need more than one Tx are errcode.Unsupported.
func (b *I2C) Transaction(addr i2c1.SevenBitAddress, ops []i2c1.Operation) error {
	segs, err := splice.I2C("periphshim.i2c", ops)
	if err != nil {
		return err
	}
	return splice.Frame("periphshim.i2c", segs, func(w, r []byte) error { return b.bus.Tx(uint16(addr), w, r) })
}

// Bus presents a v1 I2C as a periph i2c.Bus, for periph device drivers.
type Bus struct {
	name string
	bus  i2c1.I2C
}

var _ i2c.Bus = (*Bus)(nil)

func NewBus(name string, bus i2c1.I2C) *Bus { return &Bus{name: name, bus: bus} }

func (b *Bus) String() string { return b.name }

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7f {
		return &errcode.E{C: errcode.InvalidParams, Op: "periphshim.i2c", Msg: "address " + strconv.Itoa(int(addr)) + " is not 7-bit"}
	}
	a := i2c1.SevenBitAddress(addr)
	switch {
	case len(r) == 0:
		return b.bus.Write(a, w)
	case len(w) == 0:
		return b.bus.Read(a, r)
	}
	return b.bus.WriteRead(a, w, r)
}

// SetSpeed is not expressible through the v1 interface.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return errcode.Unsupportedf("periphshim.i2c", "SetSpeed("+f.String()+")")
}
