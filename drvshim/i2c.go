// Package drvshim connects the v1 interfaces to the tinygo.org/x/drivers bus
// shapes, in both directions, so that TinyGo drivers can run on any v1
// peripheral (and, through compat, on any v0 one).
package drvshim

import (
	"strconv"

	"halcompat/errcode"
	i2c1 "halcompat/halv1/i2c"
	"halcompat/internal/splice"

	"tinygo.org/x/drivers"
)

// I2C adapts a v1 I2C to the tinygo driver Tx shape.
type I2C struct {
	bus i2c1.I2C
}

var _ drivers.I2C = I2C{}

func NewI2C(bus i2c1.I2C) I2C {
	return I2C{bus: bus}
}

// Tx maps to Write, Read or WriteRead depending on which buffers are set.
// Ten-bit addresses are rejected.
func (s I2C) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7f {
		return &errcode.E{C: errcode.InvalidParams, Op: "drvshim.i2c", Msg: "address " + strconv.Itoa(int(addr)) + " is not 7-bit"}
	}
	a := i2c1.SevenBitAddress(addr)
	switch {
	case len(r) == 0:
		return s.bus.Write(a, w)
	case len(w) == 0:
		return s.bus.Read(a, r)
	}
	return s.bus.WriteRead(a, w, r)
}

// I2CBus presents a tinygo drivers.I2C as a v1 I2C. Errors from the driver
// bus are returned as is and classify as i2c.ErrorOther.
type I2CBus struct {
	tx drivers.I2C
}

var _ i2c1.I2C = (*I2CBus)(nil)

func FromI2C(tx drivers.I2C) *I2CBus { return &I2CBus{tx: tx} }

func (b *I2CBus) Read(addr i2c1.SevenBitAddress, buf []byte) error {
	return b.tx.Tx(uint16(addr), nil, buf)
}

func (b *I2CBus) Write(addr i2c1.SevenBitAddress, buf []byte) error {
	return b.tx.Tx(uint16(addr), buf, nil)
}

func (b *I2CBus) WriteRead(addr i2c1.SevenBitAddress, w, r []byte) error {
	return b.tx.Tx(uint16(addr), w, r)
}

// Transaction issues a single Tx: the write run as w and the read run after
// it as r. Lists that need more than one Tx are errcode.Unsupported.
func (b *I2CBus) Transaction(addr i2c1.SevenBitAddress, ops []i2c1.Operation) error {
	segs, err := splice.I2C("drvshim.i2c", ops)
	if err != nil {
		return err
	}
	return splice.Frame("drvshim.i2c", segs, func(w, r []byte) error { return b.tx.Tx(uint16(addr), w, r) })
}
