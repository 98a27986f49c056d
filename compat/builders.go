package compat

import (
	"halcompat/errcode"
	delay0 "halcompat/halv0/delay"
	digital0 "halcompat/halv0/digital"
	serial0 "halcompat/halv0/serial"
	spi0 "halcompat/halv0/spi"
	delay1 "halcompat/halv1/delay"
	digital1 "halcompat/halv1/digital"
	i2c1 "halcompat/halv1/i2c"
	"halcompat/halv1/serialio"
	spi1 "halcompat/halv1/spi"
)

// Builders check the inner value's capabilities when they are called and
// return errcode.Unsupported if it lacks the source interface. Use the typed
// constructors instead when the static type is known.

// ---- forward ----

// Pin builds the forward pin adapter selected by mode.
func (f *Forward[T]) Pin(mode PinMode) (ForwardPin, error) {
	switch mode {
	case PinInput:
		return nonNil(f.InputPin())
	case PinOutput:
		return nonNil(f.OutputPin())
	case PinIO:
		return nonNil(f.IOPin())
	}
	return nil, &errcode.E{C: errcode.InvalidParams, Op: "forward.pin", Msg: "unknown mode " + mode.String()}
}

// nonNil keeps a nil adapter pointer from turning into a non-nil interface.
func nonNil[P ForwardPin](p P, err error) (ForwardPin, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (f *Forward[T]) InputPin() (*ForwardInputPin[digital0.InputPin], error) {
	p, ok := any(f.inner).(digital0.InputPin)
	if !ok {
		return nil, errcode.Unsupportedf("forward.input_pin", "inner value is not a v0 InputPin")
	}
	return NewForwardInputPin(p), nil
}

func (f *Forward[T]) OutputPin() (*ForwardOutputPin[digital0.OutputPin], error) {
	p, ok := any(f.inner).(digital0.OutputPin)
	if !ok {
		return nil, errcode.Unsupportedf("forward.output_pin", "inner value is not a v0 OutputPin")
	}
	return NewForwardOutputPin(p), nil
}

func (f *Forward[T]) IOPin() (*ForwardIOPin[IOPinV0], error) {
	p, ok := any(f.inner).(IOPinV0)
	if !ok {
		return nil, errcode.Unsupportedf("forward.io_pin", "inner value is not a v0 InputPin and OutputPin")
	}
	return NewForwardIOPin(p), nil
}

func (f *Forward[T]) StatefulOutputPin() (*ForwardStatefulOutputPin[digital0.StatefulOutputPin], error) {
	p, ok := any(f.inner).(digital0.StatefulOutputPin)
	if !ok {
		return nil, errcode.Unsupportedf("forward.stateful_output_pin", "inner value is not a v0 StatefulOutputPin")
	}
	return NewForwardStatefulOutputPin(p), nil
}

func (f *Forward[T]) WaitPin() (*ForwardWaitPin[WaitPinV0], error) {
	p, ok := any(f.inner).(WaitPinV0)
	if !ok {
		return nil, errcode.Unsupportedf("forward.wait_pin", "inner value is not a v0 InputPin with v1 Wait")
	}
	return NewForwardWaitPin(p), nil
}

// SPIBus prefers the blocking Write and Transfer pair and falls back to the
// word-at-a-time FullDuplex.
func (f *Forward[T]) SPIBus() (spi1.Bus, error) {
	switch b := any(f.inner).(type) {
	case SPIBusV0:
		return NewForwardSPIBus(b), nil
	case spi0.FullDuplex:
		return NewForwardSPIFullDuplex(b), nil
	}
	return nil, errcode.Unsupportedf("forward.spi_bus", "inner value is neither a v0 Write+Transfer bus nor FullDuplex")
}

func (f *Forward[T]) SPIDevice() (*ForwardSPIDevice[SPIBusV0], error) {
	b, ok := any(f.inner).(SPIBusV0)
	if !ok {
		return nil, errcode.Unsupportedf("forward.spi_device", "inner value is not a v0 Write+Transfer bus")
	}
	return NewForwardSPIDevice(b), nil
}

func (f *Forward[T]) I2C() (*ForwardI2C[I2CV0], error) {
	b, ok := any(f.inner).(I2CV0)
	if !ok {
		return nil, errcode.Unsupportedf("forward.i2c", "inner value is not a v0 Read+Write+WriteRead bus")
	}
	return NewForwardI2C(b), nil
}

// Serial prefers BlockingWrite and falls back to the non-blocking word writer.
func (f *Forward[T]) Serial() (serialio.Write, error) {
	switch s := any(f.inner).(type) {
	case serial0.BlockingWrite:
		return NewForwardSerial(s), nil
	case serial0.Write:
		return NewForwardSerialNB(s), nil
	}
	return nil, errcode.Unsupportedf("forward.serial", "inner value is not a v0 serial writer")
}

func (f *Forward[T]) SerialReader() (*ForwardSerialReader[serial0.Read], error) {
	s, ok := any(f.inner).(serial0.Read)
	if !ok {
		return nil, errcode.Unsupportedf("forward.serial_reader", "inner value is not a v0 serial Read")
	}
	return NewForwardSerialReader(s), nil
}

// ForwardDelayOf checks that v is a v0 delay of width W.
func ForwardDelayOf[W delay0.Word](v any) (*ForwardDelay[W, delay0.Delay[W]], error) {
	d, ok := v.(delay0.Delay[W])
	if !ok {
		return nil, errcode.Unsupportedf("forward.delay", "inner value is not a v0 Delay of the requested width")
	}
	return NewForwardDelay[W](d), nil
}

// ---- reverse ----

func (r *Reverse[T]) InputPin() (*ReverseInputPin[digital1.InputPin], error) {
	p, ok := any(r.inner).(digital1.InputPin)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.input_pin", "inner value is not a v1 InputPin")
	}
	return NewReverseInputPin(p), nil
}

func (r *Reverse[T]) OutputPin() (*ReverseOutputPin[digital1.OutputPin], error) {
	p, ok := any(r.inner).(digital1.OutputPin)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.output_pin", "inner value is not a v1 OutputPin")
	}
	return NewReverseOutputPin(p), nil
}

func (r *Reverse[T]) IOPin() (*ReverseIOPin[digital1.IOPin], error) {
	p, ok := any(r.inner).(digital1.IOPin)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.io_pin", "inner value is not a v1 IOPin")
	}
	return NewReverseIOPin(p), nil
}

func (r *Reverse[T]) StatefulOutputPin() (*ReverseStatefulOutputPin[digital1.StatefulOutputPin], error) {
	p, ok := any(r.inner).(digital1.StatefulOutputPin)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.stateful_output_pin", "inner value is not a v1 StatefulOutputPin")
	}
	return NewReverseStatefulOutputPin(p), nil
}

func (r *Reverse[T]) SPIBus() (*ReverseSPIBus[spi1.Bus], error) {
	b, ok := any(r.inner).(spi1.Bus)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.spi_bus", "inner value is not a v1 Bus")
	}
	return NewReverseSPIBus(b), nil
}

func (r *Reverse[T]) SPIDevice() (*ReverseSPIDevice[spi1.Device], error) {
	d, ok := any(r.inner).(spi1.Device)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.spi_device", "inner value is not a v1 Device")
	}
	return NewReverseSPIDevice(d), nil
}

func (r *Reverse[T]) I2C() (*ReverseI2C[i2c1.I2C], error) {
	b, ok := any(r.inner).(i2c1.I2C)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.i2c", "inner value is not a v1 I2C")
	}
	return NewReverseI2C(b), nil
}

func (r *Reverse[T]) Serial() (*ReverseSerial[serialio.Write], error) {
	s, ok := any(r.inner).(serialio.Write)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.serial", "inner value is not a v1 stream Write")
	}
	return NewReverseSerial(s), nil
}

func (r *Reverse[T]) SerialReader() (*ReverseSerialReader[SerialReaderV1], error) {
	s, ok := any(r.inner).(SerialReaderV1)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.serial_reader", "inner value is not a v1 Read with ReadReady")
	}
	return NewReverseSerialReader(s), nil
}

// ReverseDelayOf checks that v is a v1 DelayNs and narrows it to width W.
func ReverseDelayOf[W delay0.Word](v any) (*ReverseDelay[W, delay1.DelayNs], error) {
	d, ok := v.(delay1.DelayNs)
	if !ok {
		return nil, errcode.Unsupportedf("reverse.delay", "inner value is not a v1 DelayNs")
	}
	return NewReverseDelay[W](d), nil
}
