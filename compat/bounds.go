package compat

import (
	digital0 "halcompat/halv0/digital"
	i2c0 "halcompat/halv0/i2c"
	spi0 "halcompat/halv0/spi"
	digital1 "halcompat/halv1/digital"
	"halcompat/halv1/serialio"
)

// Source bounds shared by several adapters.
type (
	// IOPinV0 is a v0 pin that is read and driven.
	IOPinV0 interface {
		digital0.InputPin
		digital0.OutputPin
	}
	// WaitPinV0 is a v0 input pin that also implements the v1 Wait
	// interface, the usual shape of a HAL that added edge waits later.
	WaitPinV0 interface {
		digital0.InputPin
		digital1.Wait
	}
	// SPIBusV0 is a blocking v0 SPI bus.
	SPIBusV0 interface {
		spi0.Write
		spi0.Transfer
	}
	// I2CV0 is a v0 I2C bus with the three blocking primitives.
	I2CV0 interface {
		i2c0.Read
		i2c0.Write
		i2c0.WriteRead
	}
	// TransactionalI2CV0 also runs whole operation lists in one frame.
	TransactionalI2CV0 interface {
		I2CV0
		i2c0.Transactional
	}
	// SerialReaderV1 is a v1 stream that can be polled.
	SerialReaderV1 interface {
		serialio.Read
		serialio.ReadReady
	}
)
